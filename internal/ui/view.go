package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/elizacamber/composeplayground/internal/config"
	"github.com/elizacamber/composeplayground/internal/core"
)

func (m Model) View() string {
	if m.termWidth == 0 {
		return "Initializing..."
	}

	if IsBelowMinimum(m.termWidth, m.termHeight) {
		return m.renderSizeOverlay()
	}

	l := m.layout()

	var body string
	switch m.screen {
	case core.ScreenNames:
		body = m.viewNames(l)
	case core.ScreenStaggered:
		body = m.viewStagger(l)
	case core.ScreenMoreLess:
		body = m.viewMoreLess(l)
	}
	body = lipgloss.NewStyle().
		Width(l.BodyWidth).
		Height(l.BodyHeight).
		MaxHeight(l.BodyHeight).
		Render(body)

	items := []string{}
	if l.ShowHeader {
		items = append(items, m.renderHeader(l.BodyWidth))
	}
	items = append(items, body)
	if l.ShowFooter {
		items = append(items, m.renderFooter(l.BodyWidth))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// renderHeader draws the title and one tab per screen.
func (m Model) renderHeader(width int) string {
	title := titleStyle.Render(config.AppName)
	var tabs []string
	for i := 0; i < core.ScreenCount; i++ {
		s := core.Screen(i)
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == m.screen {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{title}, tabs...)...)
	divider := dividerStyle.Render(strings.Repeat("─", max(width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, truncateText(line, width), divider)
}

func screenHelp(s core.Screen) string {
	switch s {
	case core.ScreenNames:
		return "↑/↓: Move, Space: Highlight, Enter: Hit, t/b: Top/Bottom, y: Copy"
	case core.ScreenStaggered:
		return "←/→: Scroll, t: Start, y: Copy"
	case core.ScreenMoreLess:
		return "↑/↓: Focus, Space/Enter: Show more/less, y: Copy"
	}
	return ""
}

// renderFooter is the help line followed by the status line.
func (m Model) renderFooter(width int) string {
	help := helpStyle.Render(truncateText(screenHelp(m.screen)+" | Tab: Screen, q: Quit", width))

	status := helpStyle.Render("THEME: ") + m.Config.Theme
	if m.statusMessage != "" {
		status = statusStyle.Render(m.statusMessage)
	}
	return lipgloss.JoinVertical(lipgloss.Left, help, truncateText(status, width))
}

// truncateText clips a string to a max visual width
func truncateText(s string, maxLength int) string {
	if ansi.StringWidth(s) <= maxLength {
		return s
	}
	return ansi.Truncate(s, maxLength, "…")
}

// renderSizeOverlay shows a centered panel with current and required dimensions
func (m Model) renderSizeOverlay() string {
	reqW, reqH := MinBodyWidth+LayoutSideMargin, MinBodyHeight+LayoutVertPadding
	inner := max(m.termWidth-6, 8)

	lines := []string{titleStyle.Render("Terminal too small")}
	info := fmt.Sprintf("Current: %dx%d | Required: %dx%d", m.termWidth, m.termHeight, reqW, reqH)
	for _, line := range WrapLine(info, inner) {
		lines = append(lines, helpStyle.Render(line))
	}

	overlay := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(config.MapThemeToUI(config.GetTheme(m.Config.Theme)).Warning)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(
		m.termWidth, m.termHeight,
		lipgloss.Center, lipgloss.Center,
		overlay,
	)
}
