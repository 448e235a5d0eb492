package ui

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const watchedConfigFile = "config.toml"

// ConfigChangedMsg signals that config.toml changed on disk.
type ConfigChangedMsg struct {
	Path string
}

// WatchConfigCmd blocks until config.toml in configDir is written, created
// or replaced, then reports it once. Update re-arms it after every change.
func WatchConfigCmd(configDir string) tea.Cmd {
	if configDir == "" {
		return nil
	}
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Printf("Failed to create file watcher: %v", err)
			return nil
		}
		defer watcher.Close()

		// Editors often save by renaming a temp file over the original, so
		// the directory is watched rather than the file.
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
				if !isConfigEvent(configDir, event) {
					continue
				}
				log.Printf("Detected change in: %s", event.Name)
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

func isConfigEvent(configDir string, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Join(configDir, watchedConfigFile)
}
