package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// label is a one-line widget. The style is read at render time so a palette
// change shows up without rebuilding the widget.
type label struct {
	text  string
	style *lipgloss.Style
}

func newLabel(style *lipgloss.Style) *label {
	return &label{style: style}
}

func (l *label) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return l.style.Render(truncate(l.text, width))
}

// separator is a divider line between forecast days.
type separator struct {
	vertical bool
}

func (s *separator) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if s.vertical {
		return dividerStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
	}
	return dividerStyle.Render(strings.Repeat("─", width))
}
