package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/elizacamber/composeplayground/internal/cli"
	"github.com/elizacamber/composeplayground/internal/config"
	"github.com/elizacamber/composeplayground/internal/core"
	"github.com/elizacamber/composeplayground/internal/ui"
)

const (
	logFileName = "playground.log"
	maxLogBytes = 1024 * 1024
)

// Run wires everything together: CLI commands short-circuit, otherwise the
// config is loaded, logging is pointed at the config dir and the TUI starts.
func Run() {
	if cli.HandleCLI(os.Args) {
		return
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		fmt.Printf("could not get config dir: %v", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		fmt.Printf("could not create config dir: %v", err)
		os.Exit(1)
	}

	// Logging setup
	f, err := core.OpenLog(filepath.Join(configDir, logFileName), maxLogBytes)
	if err != nil {
		fmt.Printf("could not open log file: %v", err)
		os.Exit(1)
	}
	defer f.Close()
	log.Printf("starting %s %s", config.AppName, config.Version)

	bundle := config.LoadConfigFrom(configDir)

	program := tea.NewProgram(ui.InitialModel(bundle))
	if _, err := program.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
