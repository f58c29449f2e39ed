package core

import "strings"

// Screen identifies one of the demo screens.
type Screen int

const (
	ScreenNames Screen = iota
	ScreenStaggered
	ScreenMoreLess
)

// ScreenCount is the number of selectable screens.
const ScreenCount = 3

var screenNames = [ScreenCount]string{"names", "staggered", "moreless"}

func (s Screen) String() string {
	if s < 0 || int(s) >= ScreenCount {
		return "unknown"
	}
	return screenNames[s]
}

// ParseScreen accepts a screen name or its index ("0".."2").
func ParseScreen(s string) (Screen, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range screenNames {
		if s == name || (len(s) == 1 && s[0] == byte('0'+i)) {
			return Screen(i), true
		}
	}
	switch s {
	case "dummy", "list":
		return ScreenNames, true
	case "grid", "stagger":
		return ScreenStaggered, true
	case "more_less", "text":
		return ScreenMoreLess, true
	}
	return ScreenNames, false
}

// CalculateNextScreenIndex determines the next screen index based on direction and wrapping.
// direction should be 1 (next) or -1 (previous).
func CalculateNextScreenIndex(currentIndex, direction, total int) int {
	if total <= 0 {
		return 0
	}
	next := (currentIndex + direction) % total
	if next < 0 {
		next += total
	}
	return next
}
