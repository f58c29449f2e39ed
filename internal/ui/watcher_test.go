package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestIsConfigEvent(t *testing.T) {
	dir := "/home/u/.config/playground"
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write toml", fsnotify.Event{Name: dir + "/config.toml", Op: fsnotify.Write}, true},
		{"create toml", fsnotify.Event{Name: dir + "/config.toml", Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: dir + "/config.toml", Op: fsnotify.Chmod}, false},
		{"log file", fsnotify.Event{Name: dir + "/playground.log", Op: fsnotify.Write}, false},
		{"subdir", fsnotify.Event{Name: dir + "/old/config.toml", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConfigEvent(tt.event, dir); got != tt.want {
				t.Errorf("isConfigEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestWatchConfigCmd_ReportsWrite(t *testing.T) {
	dir := t.TempDir()
	done := make(chan any, 1)
	go func() { done <- WatchConfigCmd(dir)() }()

	path := filepath.Join(dir, "config.toml")
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case msg := <-done:
			changed, ok := msg.(ConfigChangedMsg)
			if !ok {
				t.Fatalf("unexpected message %#v", msg)
			}
			if filepath.Base(changed.Path) != "config.toml" {
				t.Errorf("Path = %q", changed.Path)
			}
			return
		case <-tick.C:
			// keep writing until the watcher is up
			if err := os.WriteFile(path, []byte("theme = \"nord\"\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("watcher did not report the write")
		}
	}
}
