package ui

import (
	"slices"

	"github.com/DarkTime312/Weather-App/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// IsQuit checks if the key is one of the quit keys.
func IsQuit(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.QuitKeys, msg.String())
}

// IsRefresh checks if the key matches the refresh action.
func IsRefresh(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Refresh
}

// IsCopy checks if the key matches the copy summary action.
func IsCopy(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Copy
}

// IsOpenMap checks if the key matches the open map action.
func IsOpenMap(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.OpenMap
}
