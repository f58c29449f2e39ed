package ui

import (
	"errors"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/elizacamber/composeplayground/internal/core"
)

// SampleTexts are shown on the more/less screen.
var SampleTexts = []string{
	"a dummy text that should show full in two lines",
	"a dummy text that should not be too long to show entirely in juuust two lines",
	"a dummy text that should be too long to show entirely in two lines and should show the expand buttons",
	"a dummy text that should be too long to show entirely in two lines and should show the expand buttons",
	"a dummy text that should be too long to show entirely in two lines and should show the expand buttons",
	"a dummy text that should be too long to show entirely in two lines and should show the expand buttons",
}

// blank line between items
const moreLessSpacing = 1

type moreLessModel struct {
	items  []*core.MoreLess
	cursor int
	width  int // width the items were last measured at
	// overflow is logged once per item
	overflowLogged map[int]bool
}

func newMoreLessModel(texts []string, opts core.MoreLessOptions) moreLessModel {
	ml := moreLessModel{overflowLogged: make(map[int]bool)}
	for _, t := range texts {
		ml.items = append(ml.items, core.NewMoreLess(t, opts))
	}
	return ml
}

// measure runs a layout pass for every item at the given width. Items keep
// their expanded state.
func (ml *moreLessModel) measure(width int) {
	if width <= 0 {
		return
	}
	ml.width = width
	for i, item := range ml.items {
		m := MeasureText(item.Text, width, item.Options.MaxLines)
		if err := item.Measure(m); err != nil {
			log.Printf("more/less item %d: %v", i, err)
		}
	}
}

// renderItem renders one item wrapped to the measured width.
func (ml *moreLessModel) renderItem(i int) []string {
	item := ml.items[i]
	r, err := item.Render()
	if err != nil {
		if errors.Is(err, core.ErrTruncationOverflow) {
			if !ml.overflowLogged[i] {
				log.Printf("more/less item %d: %v", i, err)
				ml.overflowLogged[i] = true
			}
		} else {
			log.Printf("more/less item %d: %v", i, err)
		}
	}
	return WrapRendered(r, ml.width, affordanceStyle)
}

func moreLessWidth(cfgWidth int, l Layout) int {
	// room for the focus marker
	return max(min(cfgWidth, l.BodyWidth-2), 1)
}

func (m Model) updateMoreLess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.Keys
	switch {
	case IsUp(keys, msg):
		if m.moreLess.cursor > 0 {
			m.moreLess.cursor--
		}
	case IsDown(keys, msg):
		if m.moreLess.cursor < len(m.moreLess.items)-1 {
			m.moreLess.cursor++
		}
	case IsToggle(keys, msg), IsConfirm(msg):
		if len(m.moreLess.items) > 0 {
			item := m.moreLess.items[m.moreLess.cursor]
			if item.Toggle() {
				log.Printf("more/less item %d expanded=%v", m.moreLess.cursor, item.Expanded)
			}
		}
	case IsCopy(msg):
		if len(m.moreLess.items) > 0 {
			return m, copyCmd(m.moreLess.items[m.moreLess.cursor].Text)
		}
	}
	return m, nil
}

func (m Model) viewMoreLess(l Layout) string {
	ml := m.moreLess
	divider := dividerStyle.Render(strings.Repeat("─", max(ml.width, 1)))

	var blocks [][]string
	focusStart, focusEnd := 0, 0
	total := 0
	for i := range ml.items {
		marker := "  "
		if i == ml.cursor {
			marker = focusedTextMarker.Render("▌ ")
		}
		var lines []string
		for _, line := range ml.renderItem(i) {
			lines = append(lines, marker+line)
		}
		lines = append(lines, "  "+divider)
		if i < len(ml.items)-1 {
			for s := 0; s < moreLessSpacing; s++ {
				lines = append(lines, "")
			}
		}
		if i == ml.cursor {
			focusStart, focusEnd = total, total+len(lines)
		}
		total += len(lines)
		blocks = append(blocks, lines)
	}

	var all []string
	for _, b := range blocks {
		all = append(all, b...)
	}
	return strings.Join(visibleWindow(all, focusStart, focusEnd, l.BodyHeight), "\n")
}

// visibleWindow returns at most height lines of all, scrolled so that the
// focused range [start, end) is in view.
func visibleWindow(all []string, start, end, height int) []string {
	if height <= 0 || len(all) <= height {
		return all
	}
	offset := 0
	if end > height {
		offset = end - height
	}
	if start < offset {
		offset = start
	}
	offset = core.ClampOffset(offset, len(all), height)
	return all[offset : offset+height]
}
