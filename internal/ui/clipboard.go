package ui

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// clipboardTool is an external program that reads the clipboard content on
// stdin.
type clipboardTool struct {
	name string
	args []string
}

// clipboardTools lists the candidates for goos in order of preference.
func clipboardTools(goos string, wayland bool) []clipboardTool {
	switch goos {
	case "darwin":
		return []clipboardTool{{name: "pbcopy"}}
	case "windows":
		return []clipboardTool{
			{name: "powershell.exe", args: []string{"-NoLogo", "-NoProfile", "-Command", "$input | Set-Clipboard"}},
			{name: "clip.exe"},
		}
	default:
		var tools []clipboardTool
		if wayland {
			tools = append(tools, clipboardTool{name: "wl-copy"})
		}
		return append(tools,
			clipboardTool{name: "xclip", args: []string{"-selection", "clipboard"}},
			clipboardTool{name: "xsel", args: []string{"--clipboard", "--input"}},
		)
	}
}

func isWayland() bool {
	return os.Getenv("WAYLAND_DISPLAY") != "" || strings.Contains(os.Getenv("XDG_SESSION_TYPE"), "wayland")
}

// osc52Sequence builds the terminal clipboard escape, wrapped for tmux or
// screen when needed.
func osc52Sequence(s string, tmux, screen bool) string {
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	switch {
	case tmux:
		return fmt.Sprintf("\x1bPtmux;\x1b\x1b]52;c;%s\x07\x1b\\", enc)
	case screen:
		return fmt.Sprintf("\x1bP\x1b]52;c;%s\x07\x1b\\", enc)
	default:
		return fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	}
}

// copyToClipboard tries every platform tool and falls back to OSC52 on
// stderr. It returns the method that worked.
func copyToClipboard(s string, goos string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("nothing to copy")
	}

	for _, tool := range clipboardTools(goos, isWayland()) {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		cmd := exec.Command(tool.name, tool.args...)
		cmd.Stdin = strings.NewReader(s)
		if err := cmd.Run(); err != nil {
			log.Printf("Clipboard command failed: %s %v, error: %v", tool.name, tool.args, err)
			continue
		}
		log.Printf("Copied to clipboard using: %s", tool.name)
		return tool.name, nil
	}

	return "OSC52", writeOSC52(os.Stderr, s)
}

func writeOSC52(w io.Writer, s string) error {
	seq := osc52Sequence(s, os.Getenv("TMUX") != "", os.Getenv("STY") != "")
	if _, err := io.WriteString(w, seq); err != nil {
		return fmt.Errorf("OSC52 copy failed: %w", err)
	}
	log.Printf("Copied to clipboard using OSC52")
	return nil
}
