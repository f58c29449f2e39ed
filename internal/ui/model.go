package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/elizacamber/composeplayground/internal/config"
	"github.com/elizacamber/composeplayground/internal/core"
)

const statusDuration = 4 * time.Second

type Model struct {
	screen     core.Screen
	termWidth  int
	termHeight int
	Quitting   bool
	spinner    spinner.Model

	Config    config.Config
	configDir string

	names    namesModel
	stagger  staggerModel
	moreLess moreLessModel

	statusMessage      string
	nextTimerID        int
	statusClearTimerID int
	// watch disables the config watcher, tests run without it
	watch bool
}

// InitialModel builds the model from a loaded config bundle.
func InitialModel(bundle config.ConfigBundle) Model {
	s := spinner.New()
	s.Spinner = spinner.Line

	m := Model{
		spinner:   s,
		configDir: bundle.ConfigDir,
		names:     newNamesModel(defaultNameCount),
		watch:     bundle.ConfigDir != "",
	}
	m.applyConfig(bundle.Config)
	m.screen = bundle.Config.StartScreen()
	if bundle.Err != nil {
		m.statusMessage = fmt.Sprintf("config error, using defaults: %v", bundle.Err)
	}
	return m
}

// applyConfig re-styles and re-lays out every screen. Toggle state of the
// more/less texts survives a reload when the texts are unchanged.
func (m *Model) applyConfig(cfg config.Config) {
	cfg.ApplyDefaults()
	config.ClampConfig(&cfg)
	applyThemeStyles(cfg)
	m.Config = cfg
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(config.GetTheme(cfg.Theme).Accent))

	m.stagger = buildStagger(Topics, cfg.Stagger.Rows, cfg.Stagger.ChipPadding)

	expanded := make([]bool, len(m.moreLess.items))
	for i, item := range m.moreLess.items {
		expanded[i] = item.Expanded
	}
	cursor := m.moreLess.cursor
	m.moreLess = newMoreLessModel(SampleTexts, cfg.MoreLessOptions())
	for i := range m.moreLess.items {
		if i < len(expanded) {
			m.moreLess.items[i].Expanded = expanded[i]
		}
	}
	m.moreLess.cursor = min(cursor, max(len(m.moreLess.items)-1, 0))
	m.remeasure()

	log.Printf("applied config: theme=%s rows=%d max_lines=%d", cfg.Theme, cfg.Stagger.Rows, cfg.MoreLess.MaxLines)
}

// remeasure runs the layout passes that depend on the terminal size.
func (m *Model) remeasure() {
	if m.termWidth == 0 {
		return
	}
	l := m.layout()
	m.moreLess.measure(moreLessWidth(m.Config.MoreLess.Width, l))
	m.stagger.offsetX = core.ClampOffset(m.stagger.offsetX, m.stagger.layout.Width, l.BodyWidth)
	visible := m.names.visibleItems(l.BodyHeight)
	m.names.offset = core.ClampOffset(m.names.offset, len(m.names.names), visible)
}

func (m Model) layout() Layout {
	return CalculateLayout(m.termWidth, m.termHeight)
}

// Screen returns the active screen.
func (m Model) Screen() core.Screen {
	return m.screen
}

func (m *Model) switchScreen(s core.Screen) {
	if s == m.screen {
		return
	}
	log.Printf("switching screen %s -> %s", m.screen, s)
	m.screen = s
}

func (m *Model) scheduleStatusClearTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.statusClearTimerID = id
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.statusMessage = message
	if strings.TrimSpace(message) == "" {
		m.statusClearTimerID = 0
		return nil
	}
	return m.scheduleStatusClearTimer()
}
