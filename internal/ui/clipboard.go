package ui

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// copyCmd copies s off the update loop and reports back what was copied.
func copyCmd(s string) tea.Cmd {
	return func() tea.Msg {
		if !CopyToClipboard(s) {
			return clipboardMsg{}
		}
		return clipboardMsg{what: s}
	}
}

// CopyToClipboard tries the platform clipboard tool first and falls back to
// an OSC52 escape sequence.
func CopyToClipboard(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if name, args := clipboardCommand(runtime.GOOS); name != "" && runClipboard(s, name, args...) {
		return true
	}
	return writeOSC52(s)
}

// clipboardCommand picks the copy tool available on this system.
func clipboardCommand(goos string) (string, []string) {
	var candidates [][]string
	switch goos {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "windows":
		candidates = [][]string{{"clip.exe"}}
	default:
		if os.Getenv("WAYLAND_DISPLAY") != "" || strings.Contains(os.Getenv("XDG_SESSION_TYPE"), "wayland") {
			candidates = append(candidates, []string{"wl-copy"})
		}
		candidates = append(candidates,
			[]string{"xclip", "-selection", "clipboard"},
			[]string{"xsel", "--clipboard", "--input"},
		)
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c[0], c[1:]
		}
	}
	return "", nil
}

func runClipboard(s, name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(s)
	if err := cmd.Run(); err != nil {
		log.Printf("clipboard command failed: %s %v, error: %v", name, args, err)
		return false
	}
	log.Printf("copied to clipboard using: %s", name)
	return true
}

// osc52Sequence wraps the payload for tmux and screen when they are detected.
func osc52Sequence(s string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	switch {
	case os.Getenv("TMUX") != "":
		return fmt.Sprintf("\x1bPtmux;\x1b\x1b]52;c;%s\x07\x1b\\", enc)
	case os.Getenv("STY") != "":
		return fmt.Sprintf("\x1bP\x1b]52;c;%s\x07\x1b\\", enc)
	default:
		return fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	}
}

func writeOSC52(s string) bool {
	if _, err := os.Stderr.WriteString(osc52Sequence(s)); err != nil {
		log.Printf("OSC52 copy failed: %v", err)
		return false
	}
	return true
}
