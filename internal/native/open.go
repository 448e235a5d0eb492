// Package native hands URLs to the operating system.
package native

import (
	"fmt"
	"os/exec"
	"runtime"
)

// command returns the program and arguments that open target on goos.
func command(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		// start is a cmd built-in; the empty string is the window title.
		return "cmd", []string{"/c", "start", "", target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}

// Open opens target, usually a URL, with the default application. It does
// not wait for the browser to exit.
func Open(target string) error {
	name, args := command(runtime.GOOS, target)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", target, err)
	}
	return nil
}
