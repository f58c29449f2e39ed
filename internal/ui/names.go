package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/elizacamber/composeplayground/internal/core"
)

const (
	defaultNameCount = 1000
	scrollFrame      = 16 * time.Millisecond
	// each greeting takes its own line plus a divider
	nameItemHeight = 2
	hotCount       = 5
)

// namesModel is the scrollable greeting list with a hit counter.
type namesModel struct {
	names    []string
	cursor   int
	offset   int // first visible item
	selected map[int]bool
	count    int

	// animated scroll
	target    int
	scrolling bool
	scrollID  int
}

func newNamesModel(n int) namesModel {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Android #%d", i)
	}
	return namesModel{names: names, selected: make(map[int]bool)}
}

func (nm namesModel) visibleItems(bodyHeight int) int {
	// one line is reserved for the counter button, one for the scroll buttons
	return max((bodyHeight-2)/nameItemHeight, 1)
}

// scrollTo starts (or retargets) the scroll animation. A request made while
// another is running only moves the target.
func (nm *namesModel) scrollTo(item, visible int) tea.Cmd {
	nm.target = core.ClampOffset(item, len(nm.names), visible)
	if nm.scrolling {
		return nil
	}
	nm.scrolling = true
	nm.scrollID++
	return scrollTick(nm.scrollID)
}

func scrollTick(id int) tea.Cmd {
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollTickMsg{id: id}
	})
}

// step advances the animation by one frame.
func (nm *namesModel) step(msg scrollTickMsg) tea.Cmd {
	if !nm.scrolling || msg.id != nm.scrollID {
		return nil
	}
	nm.offset = core.ScrollStep(nm.offset, nm.target)
	if nm.offset == nm.target {
		nm.scrolling = false
		return nil
	}
	return scrollTick(nm.scrollID)
}

// moveCursor moves the cursor and drags the viewport with it.
func (nm *namesModel) moveCursor(delta, visible int) {
	nm.cursor = max(0, min(len(nm.names)-1, nm.cursor+delta))
	if nm.cursor < nm.offset {
		nm.offset = nm.cursor
	}
	if nm.cursor >= nm.offset+visible {
		nm.offset = nm.cursor - visible + 1
	}
	// manual movement cancels a running animation
	nm.scrolling = false
	nm.target = nm.offset
}

func (m Model) updateNames(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.names.visibleItems(m.layout().BodyHeight)
	keys := m.Config.Keys

	switch {
	case IsUp(keys, msg):
		m.names.moveCursor(-1, visible)
	case IsDown(keys, msg):
		m.names.moveCursor(1, visible)
	case msg.String() == "pgup":
		m.names.moveCursor(-visible, visible)
	case msg.String() == "pgdown":
		m.names.moveCursor(visible, visible)
	case IsScrollTop(keys, msg):
		m.names.cursor = 0
		return m, m.names.scrollTo(0, visible)
	case IsScrollBottom(keys, msg):
		m.names.cursor = len(m.names.names) - 1
		return m, m.names.scrollTo(len(m.names.names)-1, visible)
	case IsToggle(keys, msg):
		m.names.selected[m.names.cursor] = !m.names.selected[m.names.cursor]
	case IsConfirm(msg):
		m.names.count++
	case IsCopy(msg):
		return m, copyCmd(m.names.names[m.names.cursor])
	}
	return m, nil
}

func (m Model) viewNames(l Layout) string {
	nm := m.names
	visible := nm.visibleItems(l.BodyHeight)

	top := buttonStyle.Render("Scroll on top")
	bottom := buttonStyle.Render("Scroll to bottom")
	scrollRow := lipgloss.JoinHorizontal(lipgloss.Top, top, " ", bottom)
	if nm.scrolling {
		scrollRow += " " + m.spinner.View()
	}

	divider := dividerStyle.Render(strings.Repeat("─", max(min(l.BodyWidth, 40), 1)))

	var rows []string
	end := min(nm.offset+visible, len(nm.names))
	for i := nm.offset; i < end; i++ {
		style := greetingStyle
		if nm.selected[i] {
			style = selectedGreeting
		}
		marker := "  "
		if i == nm.cursor {
			marker = cursorStyle.Render("❯ ")
		}
		rows = append(rows, marker+"▣ "+style.Render(fmt.Sprintf("Hello %s!", nm.names[i])), divider)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		scrollRow,
		strings.Join(rows, "\n"),
		m.renderCounter(),
	)
}

func (m Model) renderCounter() string {
	label := fmt.Sprintf("I've been hit %d times", m.names.count)
	if m.names.count > hotCount {
		return hotButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
