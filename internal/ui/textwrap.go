package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/elizacamber/composeplayground/internal/core"
	"github.com/mattn/go-runewidth"
)

// Line is one wrapped line of a text, addressed in runes of the original.
type Line struct {
	Start int    // offset of the first rune on the line
	End   int    // offset where the next line starts, trailing spaces included
	Text  string // visible content without trailing spaces
}

// WrapOffsets wraps text to width cells, preserving words where possible, and
// reports where each line starts and ends in the original text. Existing
// newlines always break and belong to the line they end.
func WrapOffsets(text string, width int) []Line {
	runes := []rune(text)
	if width <= 0 {
		return []Line{{Start: 0, End: len(runes), Text: text}}
	}

	var lines []Line
	start := 0
	for {
		end := start
		for end < len(runes) && runes[end] != '\n' {
			end++
		}
		lines = append(lines, wrapParagraph(runes, start, end, width)...)
		if end >= len(runes) {
			break
		}
		lines[len(lines)-1].End = end + 1
		start = end + 1
	}
	return lines
}

func wrapParagraph(runes []rune, start, end, width int) []Line {
	var lines []Line
	lineStart, lineW, visibleEnd := start, 0, start
	empty := true

	i := start
	for i < end {
		gapStart := i
		for i < end && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= end {
			break
		}
		gapW := runesWidth(runes[gapStart:i])

		wordStart := i
		for i < end && !unicode.IsSpace(runes[i]) {
			i++
		}
		wordW := runesWidth(runes[wordStart:i])

		if !empty && lineW+gapW+wordW > width {
			lines = append(lines, Line{Start: lineStart, End: wordStart, Text: string(runes[lineStart:visibleEnd])})
			lineStart, lineW, empty = wordStart, 0, true
			gapW = 0
		}
		lineW += gapW

		if lineW+wordW <= width {
			lineW += wordW
			visibleEnd, empty = i, false
			continue
		}

		// longer than a whole line, break between runes
		for j := wordStart; j < i; j++ {
			w := runewidth.RuneWidth(runes[j])
			if lineW > 0 && lineW+w > width {
				lines = append(lines, Line{Start: lineStart, End: j, Text: string(runes[lineStart:j])})
				lineStart, lineW = j, 0
			}
			lineW += w
		}
		visibleEnd, empty = i, false
	}

	if visibleEnd < lineStart {
		visibleEnd = lineStart
	}
	lines = append(lines, Line{Start: lineStart, End: end, Text: string(runes[lineStart:visibleEnd])})
	return lines
}

func runesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// WrapLine wraps a single line of text to the specified width, preserving words where possible.
func WrapLine(s string, width int) []string {
	var out []string
	for _, l := range WrapOffsets(strings.TrimSpace(s), width) {
		out = append(out, l.Text)
	}
	return out
}

// MeasureText is the terminal's text measurement: it wraps text to width and
// reports the line count and where line maxLines-1 ends.
func MeasureText(text string, width, maxLines int) core.Measurement {
	lines := WrapOffsets(text, width)
	idx := min(maxLines, len(lines)) - 1
	if idx < 0 {
		idx = 0
	}
	return core.Measurement{
		LineCount:         len(lines),
		LineEndAtMaxLines: lines[idx].End,
	}
}

// WrapRendered wraps a rendered text like MeasureText does and styles the
// affordance, which is always the trailing segment.
func WrapRendered(r core.RenderedText, width int, affordance lipgloss.Style) []string {
	plain := r.String()
	runes := []rune(plain)
	tagStart := len(runes)
	if n := len(r.Segments); n > 0 && r.Segments[n-1].Affordance {
		tagStart -= len([]rune(r.Segments[n-1].Text))
	}

	var out []string
	for _, line := range WrapOffsets(plain, width) {
		visEnd := line.Start + len([]rune(line.Text))
		switch {
		case visEnd <= tagStart:
			out = append(out, line.Text)
		case line.Start >= tagStart:
			out = append(out, affordance.Render(line.Text))
		default:
			out = append(out, string(runes[line.Start:tagStart])+affordance.Render(string(runes[tagStart:visEnd])))
		}
	}
	return out
}
