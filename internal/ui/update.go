package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/elizacamber/composeplayground/internal/config"
	"github.com/elizacamber/composeplayground/internal/core"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, m.spinner.Tick}
	if m.watch {
		cmds = append(cmds, WatchConfigCmd(m.configDir))
	}
	if m.statusMessage != "" {
		id := m.statusClearTimerID
		cmds = append(cmds, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return statusClearMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.remeasure()
		return m, nil

	case ConfigChangedMsg:
		log.Printf("Config file change detected: %s", msg.Path)
		bundle := config.LoadConfigFrom(m.configDir)
		m.applyConfig(bundle.Config)
		var status tea.Cmd
		if bundle.Err != nil {
			status = m.setStatus(fmt.Sprintf("config error, using defaults: %v", bundle.Err))
		} else {
			status = m.setStatus("config reloaded")
		}
		// Restart the watcher for the next change
		return m, tea.Batch(status, WatchConfigCmd(m.configDir))

	case scrollTickMsg:
		return m, m.names.step(msg)

	case statusClearMsg:
		if msg.id == m.statusClearTimerID {
			m.statusMessage = ""
			m.statusClearTimerID = 0
		}
		return m, nil

	case clipboardMsg:
		if msg.what == "" {
			return m, m.setStatus("nothing copied")
		}
		return m, m.setStatus("copied to clipboard")

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		key := msg.String()
		log.Printf("Key pressed: %q", key)

		if key == "ctrl+c" || IsQuit(msg) {
			m.Quitting = true
			return m, tea.Quit
		}

		keys := m.Config.Keys
		switch {
		case IsNextScreen(keys, msg):
			m.switchScreen(core.Screen(core.CalculateNextScreenIndex(int(m.screen), 1, core.ScreenCount)))
			return m, nil
		case IsPrevScreen(keys, msg):
			m.switchScreen(core.Screen(core.CalculateNextScreenIndex(int(m.screen), -1, core.ScreenCount)))
			return m, nil
		}
		if ok, idx := IsScreenJump(msg, core.ScreenCount); ok {
			m.switchScreen(core.Screen(idx))
			return m, nil
		}

		switch m.screen {
		case core.ScreenNames:
			return m.updateNames(msg)
		case core.ScreenStaggered:
			return m.updateStagger(msg)
		case core.ScreenMoreLess:
			return m.updateMoreLess(msg)
		}
	}
	return m, nil
}
