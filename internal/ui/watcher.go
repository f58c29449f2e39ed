package ui

import (
	"log"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ConfigChangedMsg signals that a config file has changed
type ConfigChangedMsg struct {
	Path string
}

// isConfigEvent reports whether event is a write or create of a .toml file
// directly inside configDir.
func isConfigEvent(event fsnotify.Event, configDir string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	if !strings.HasSuffix(filepath.Base(event.Name), ".toml") {
		return false
	}
	return filepath.Clean(filepath.Dir(event.Name)) == filepath.Clean(configDir)
}

// WatchConfigCmd returns a command that blocks until the next config change.
// The caller re-issues it after handling ConfigChangedMsg.
func WatchConfigCmd(configDir string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Printf("Failed to create file watcher: %v", err)
			return nil
		}
		defer watcher.Close()

		if err := watcher.Add(configDir); err != nil {
			log.Printf("Failed to watch config directory: %v", err)
			return nil
		}

		log.Printf("Watching for config changes in: %s", configDir)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !isConfigEvent(event, configDir) {
					continue
				}
				log.Printf("Detected change in: %s", filepath.Base(event.Name))
				return ConfigChangedMsg{Path: event.Name}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Printf("File watcher error: %v", err)
			}
		}
	}
}
