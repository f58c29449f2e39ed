package core

import "testing"

func TestCalculateNextScreenIndex(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		direction int
		total     int
		expected  int
	}{
		{"Next wrap", 2, 1, 3, 0},
		{"Prev wrap", 0, -1, 3, 2},
		{"Simple next", 0, 1, 3, 1},
		{"Simple prev", 1, -1, 3, 0},
		{"Zero total", 0, 1, 0, 0},
		{"Single item prev", 0, -1, 1, 0},
		{"Large step", 0, 5, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateNextScreenIndex(tt.current, tt.direction, tt.total); got != tt.expected {
				t.Errorf("CalculateNextScreenIndex(%d, %d, %d) = %d, want %d",
					tt.current, tt.direction, tt.total, got, tt.expected)
			}
		})
	}
}

func TestParseScreen(t *testing.T) {
	tests := []struct {
		in     string
		want   Screen
		wantOK bool
	}{
		{"names", ScreenNames, true},
		{" Staggered ", ScreenStaggered, true},
		{"2", ScreenMoreLess, true},
		{"1", ScreenStaggered, true},
		{"grid", ScreenStaggered, true},
		{"text", ScreenMoreLess, true},
		{"9", ScreenNames, false},
		{"", ScreenNames, false},
	}
	for _, tt := range tests {
		got, ok := ParseScreen(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseScreen(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	if Screen(7).String() != "unknown" {
		t.Errorf("Screen(7).String() = %q", Screen(7).String())
	}
}
