package ui

import (
	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Styling lives in one place; applyConditionStyles swaps the whole palette
// whenever the current condition or the config changes.

const (
	statusPositiveColor = "#5fd787"
	statusNegativeColor = "#ff5f5f"
	statusInfoColor     = "#8a8a8a"
	titleTextColor      = "#1c1c1c"
)

var (
	titleBarStyle       lipgloss.Style
	titleConditionStyle lipgloss.Style
	textStyle           lipgloss.Style
	boldTextStyle       lipgloss.Style
	captionStyle        lipgloss.Style
	bigValueStyle       lipgloss.Style
	dividerStyle        lipgloss.Style
	stripBorderStyle    lipgloss.Style
	helpStyle           lipgloss.Style
	onlineStyle         lipgloss.Style
	offlineStyle        lipgloss.Style
	statusPositiveStyle lipgloss.Style
	statusNegativeStyle lipgloss.Style
	errorTitleStyle     lipgloss.Style
	errorTextStyle      lipgloss.Style
	spinnerStyle        lipgloss.Style
)

func init() {
	applyConditionStyles(config.DefaultConditions()["Clear"])
}

func applyConditionStyles(style config.ConditionStyle) {
	primary := lipgloss.Color(style.Main)
	title := lipgloss.Color(style.Title)
	text := lipgloss.Color(style.Text)
	divider := lipgloss.Color(style.Divider)

	titleBarStyle = lipgloss.NewStyle().
		Background(title).
		Foreground(lipgloss.Color(titleTextColor)).
		Bold(true).
		Padding(0, 1)

	titleConditionStyle = lipgloss.NewStyle().
		Background(title).
		Foreground(lipgloss.Color(titleTextColor))

	textStyle = lipgloss.NewStyle().
		Foreground(text)

	boldTextStyle = textStyle.Bold(true)

	captionStyle = lipgloss.NewStyle().
		Foreground(text).
		Italic(true)

	bigValueStyle = lipgloss.NewStyle().
		Foreground(text).
		Bold(true)

	dividerStyle = lipgloss.NewStyle().
		Foreground(divider)

	stripBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusInfoColor))

	onlineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusPositiveColor))

	offlineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusNegativeColor))

	statusPositiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusPositiveColor)).
		PaddingLeft(1)

	statusNegativeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusNegativeColor)).
		PaddingLeft(1)

	errorTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusNegativeColor)).
		Bold(true)

	errorTextStyle = lipgloss.NewStyle().
		Foreground(text)

	spinnerStyle = lipgloss.NewStyle().
		Foreground(primary)
}
