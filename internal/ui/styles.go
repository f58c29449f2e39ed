package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/elizacamber/composeplayground/internal/config"
)

// Styling lives in one place so colors and layout tweaks are easy to reason about.

var (
	appStyle = lipgloss.NewStyle().
			Margin(1, 2)

	titleStyle        lipgloss.Style
	tabStyle          lipgloss.Style
	activeTabStyle    lipgloss.Style
	helpStyle         lipgloss.Style
	dividerStyle      lipgloss.Style
	statusStyle       lipgloss.Style
	chipStyle         lipgloss.Style
	chipSquareStyle   lipgloss.Style
	greetingStyle     lipgloss.Style
	selectedGreeting  lipgloss.Style
	cursorStyle       lipgloss.Style
	buttonStyle       lipgloss.Style
	hotButtonStyle    lipgloss.Style
	affordanceStyle   lipgloss.Style
	focusedTextMarker lipgloss.Style
)

func init() {
	applyThemeStyles(config.DefaultConfig())
}

func applyThemeStyles(cfg config.Config) {
	theme := config.GetTheme(cfg.Theme)
	ui := config.MapThemeToUI(theme)

	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.TitleFG)).
		Bold(true).
		Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.HelpFG)).
		Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.Selected)).
		Underline(true).
		Bold(true).
		Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.HelpFG))

	dividerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.Divider))

	statusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.Warning)).
		PaddingLeft(1)

	chipStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ui.ChipBorder)).
		Padding(0, 1)

	chipSquareStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ChipSquare))

	greetingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.Selected)).
		Padding(0, 1)

	selectedGreeting = greetingStyle.
		Background(lipgloss.Color(ui.Highlight))

	cursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.TitleFG)).
		Bold(true)

	buttonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ButtonFG)).
		Background(lipgloss.Color(ui.ButtonBG)).
		Padding(0, 3)

	hotButtonStyle = buttonStyle.
		Background(lipgloss.Color(ui.ButtonHotBG))

	// bold + underline, like a link
	affordanceStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.Affordance)).
		Underline(true).
		Bold(true)

	focusedTextMarker = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.Selected)).
		Bold(true)
}
