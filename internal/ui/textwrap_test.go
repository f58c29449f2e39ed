package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/elizacamber/composeplayground/internal/core"
)

const longSample = "a dummy text that should be too long to show entirely in two lines and should show the expand buttons"

func TestWrapOffsets(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []Line
	}{
		{
			name:  "words",
			text:  "a dummy text that should show full in two lines",
			width: 30,
			want: []Line{
				{Start: 0, End: 30, Text: "a dummy text that should show"},
				{Start: 30, End: 47, Text: "full in two lines"},
			},
		},
		{
			name:  "newline belongs to its line",
			text:  "ab\ncd",
			width: 10,
			want:  []Line{{Start: 0, End: 3, Text: "ab"}, {Start: 3, End: 5, Text: "cd"}},
		},
		{
			name:  "long word is broken",
			text:  "abcdefghij",
			width: 4,
			want: []Line{
				{Start: 0, End: 4, Text: "abcd"},
				{Start: 4, End: 8, Text: "efgh"},
				{Start: 8, End: 10, Text: "ij"},
			},
		},
		{
			name:  "wide runes",
			text:  "你好世界",
			width: 4,
			want:  []Line{{Start: 0, End: 2, Text: "你好"}, {Start: 2, End: 4, Text: "世界"}},
		},
		{
			name:  "empty",
			text:  "",
			width: 10,
			want:  []Line{{Start: 0, End: 0, Text: ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapOffsets(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapOffsets() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMeasureText(t *testing.T) {
	m := MeasureText(longSample, 40, 2)
	if m.LineCount != 3 {
		t.Errorf("LineCount = %d, want 3", m.LineCount)
	}
	if m.LineEndAtMaxLines != 78 {
		t.Errorf("LineEndAtMaxLines = %d, want 78", m.LineEndAtMaxLines)
	}

	short := MeasureText("short", 40, 2)
	if short.LineCount != 1 || short.LineEndAtMaxLines != 5 {
		t.Errorf("short text measured as %+v", short)
	}
}

func TestWrapRendered(t *testing.T) {
	r, err := core.Decide(longSample, core.DefaultMoreLessOptions(), MeasureText(longSample, 40, 2), false)
	if err != nil {
		t.Fatal(err)
	}
	lines := WrapRendered(r, 40, lipgloss.NewStyle())
	if len(lines) != 2 {
		t.Fatalf("Expected collapsed text on 2 lines, got %q", lines)
	}
	if lines[1] != "show entirely in two ...     show more" {
		t.Errorf("line 1 = %q", lines[1])
	}

	r, err = core.Decide(longSample, core.DefaultMoreLessOptions(), MeasureText(longSample, 40, 2), true)
	if err != nil {
		t.Fatal(err)
	}
	lines = WrapRendered(r, 40, lipgloss.NewStyle())
	if !strings.HasSuffix(lines[len(lines)-1], "show less") {
		t.Errorf("Expected expanded text to end with the affordance, got %q", lines)
	}
}

func TestWrapLine(t *testing.T) {
	got := WrapLine("  one two three  ", 7)
	want := []string{"one two", "three"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("WrapLine() = %q, want %q", got, want)
	}
}
