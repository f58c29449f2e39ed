package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotateLogIfNeeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "playground.log")

	if RotateLogIfNeeded(path, 10) {
		t.Fatal("rotated a missing file")
	}

	if err := os.WriteFile(path, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}
	if RotateLogIfNeeded(path, 10) {
		t.Fatal("rotated a file below the limit")
	}

	if err := os.WriteFile(path, []byte(strings.Repeat("x", 32)), 0o644); err != nil {
		t.Fatal(err)
	}
	if !RotateLogIfNeeded(path, 10) {
		t.Fatal("expected rotation")
	}
	if _, err := os.Stat(path + ".old"); err != nil {
		t.Errorf("backup missing: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("original still present: %v", err)
	}
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.log")
	f, err := OpenLog(path, 1024)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}()

	log.Printf("hello from the test")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file missing entry, got %q", data)
	}
}
