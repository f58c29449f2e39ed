package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/elizacamber/composeplayground/internal/core"
)

// Topics shown on the staggered screen.
var Topics = []string{
	"Arts & Crafts", "Beauty", "Books", "Business", "Comics", "Culinary",
	"Design", "Fashion", "Film", "History", "Maths", "Music", "People", "Philosophy",
	"Religion", "Social sciences", "Technology", "TV", "Writing",
}

const horizontalScrollStep = 4

// staggerModel holds the rendered chips and their last layout.
type staggerModel struct {
	chips   []string
	layout  core.StaggeredLayout
	canvas  []string
	offsetX int
	err     error
}

// RenderChip draws one topic chip: a colored square and the label in a rounded box.
func RenderChip(text string, padding int) string {
	body := chipSquareStyle.Render("■") + " " + text
	return lipgloss.NewStyle().
		MarginRight(padding).
		Render(chipStyle.Render(body))
}

// MeasureBlocks returns the cell size of each rendered block.
func MeasureBlocks(blocks []string) []core.Box {
	out := make([]core.Box, len(blocks))
	for i, b := range blocks {
		out[i] = core.Box{Width: lipgloss.Width(b), Height: lipgloss.Height(b)}
	}
	return out
}

// buildStagger renders the chips and lays them out in rows.
func buildStagger(topics []string, rows, padding int) staggerModel {
	var sm staggerModel
	for _, t := range topics {
		sm.chips = append(sm.chips, RenderChip(t, padding))
	}
	sm.layout, sm.err = core.LayoutRows(rows, MeasureBlocks(sm.chips), core.Loose(core.Unbounded, core.Unbounded))
	if sm.err != nil {
		log.Printf("staggered layout failed: %v", sm.err)
		return sm
	}
	sm.canvas = ComposeCanvas(sm.layout, sm.chips)
	return sm
}

// ComposeCanvas draws blocks at their placements into lines of the
// container's size. Blocks are not expected to overlap; anything past the
// container edge is cut.
func ComposeCanvas(l core.StaggeredLayout, blocks []string) []string {
	blockLines := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		blockLines[i] = strings.Split(b, "\n")
		widths[i] = lipgloss.Width(b)
	}

	lines := make([]string, l.Height)
	for y := range lines {
		var hits []int
		for i, p := range l.Placements {
			if y >= p.Y && y < p.Y+len(blockLines[i]) {
				hits = append(hits, i)
			}
		}
		sort.Slice(hits, func(a, b int) bool {
			return l.Placements[hits[a]].X < l.Placements[hits[b]].X
		})

		var sb strings.Builder
		x := 0
		for _, i := range hits {
			p := l.Placements[i]
			if p.X > x {
				sb.WriteString(strings.Repeat(" ", p.X-x))
				x = p.X
			}
			seg := blockLines[i][y-p.Y]
			sb.WriteString(seg)
			if pad := widths[i] - ansi.StringWidth(seg); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			x += widths[i]
		}
		line := sb.String()
		if ansi.StringWidth(line) > l.Width {
			line = ansi.Truncate(line, l.Width, "")
		}
		lines[y] = line
	}
	return lines
}

func (m Model) updateStagger(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.Keys
	dir := 0
	switch {
	case IsLeft(keys, msg):
		dir = core.DirectionLeft
	case IsRight(keys, msg):
		dir = core.DirectionRight
	case IsScrollTop(keys, msg):
		m.stagger.offsetX = 0
		return m, nil
	case IsCopy(msg):
		return m, copyCmd(ansi.Strip(strings.Join(m.stagger.canvas, "\n")))
	}
	if dir != core.DirectionNone {
		viewport := m.layout().BodyWidth
		m.stagger.offsetX = core.ClampOffset(m.stagger.offsetX+dir*horizontalScrollStep, m.stagger.layout.Width, viewport)
	}
	return m, nil
}

func (m Model) viewStagger(l Layout) string {
	sm := m.stagger
	if sm.err != nil {
		return statusStyle.Render(sm.err.Error())
	}

	lines := make([]string, 0, len(sm.canvas))
	for i, line := range sm.canvas {
		if i >= l.BodyHeight-1 {
			break
		}
		lines = append(lines, ansi.Cut(line, sm.offsetX, sm.offsetX+l.BodyWidth))
	}

	info := helpStyle.Render(formatStaggerInfo(sm.layout, sm.offsetX, l.BodyWidth))
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n"), info)
}

func formatStaggerInfo(sl core.StaggeredLayout, offset, viewport int) string {
	var parts []string
	for _, r := range sl.Rows {
		parts = append(parts, strings.Repeat("▪", len(r.Children)))
	}
	s := strings.Join(parts, " ") + " "
	if sl.Width > viewport {
		s += fmt.Sprintf("◀ %d/%d ▶", offset, sl.Width-viewport)
	}
	return s
}
