package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/elizacamber/composeplayground/internal/config"
)

// IsUp checks if the key matches any "up" navigation key.
func IsUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavUp, msg.String())
}

// IsDown checks if the key matches any "down" navigation key.
func IsDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavDown, msg.String())
}

// IsLeft checks if the key matches any "left" navigation key.
func IsLeft(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavLeft, msg.String())
}

// IsRight checks if the key matches any "right" navigation key.
func IsRight(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavRight, msg.String())
}

// IsToggle checks if the key toggles the focused item.
func IsToggle(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Toggle
}

// IsConfirm checks for enter.
func IsConfirm(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}

// IsScrollTop checks if the key matches the scroll-to-top action.
func IsScrollTop(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.ScrollTop
}

// IsScrollBottom checks if the key matches the scroll-to-bottom action.
func IsScrollBottom(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.ScrollBottom
}

// IsNextScreen checks if the key switches to the next screen.
func IsNextScreen(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.NextScreen
}

// IsPrevScreen checks if the key switches to the previous screen.
func IsPrevScreen(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.PrevScreen
}

// IsQuit checks for q or esc.
func IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc":
		return true
	}
	return false
}

// IsCopy checks for the copy-to-clipboard key.
func IsCopy(msg tea.KeyMsg) bool {
	return msg.String() == "y"
}

// IsScreenJump checks if the key is a direct screen jump (1-3).
// Returns true and the 0-based index if matched.
func IsScreenJump(msg tea.KeyMsg, screens int) (bool, int) {
	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < screens {
		return true, int(key[0] - '1')
	}
	return false, -1
}
