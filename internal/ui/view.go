package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DarkTime312/Weather-App/internal/layout"
	"github.com/DarkTime312/Weather-App/internal/weather"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.Quitting || m.termWidth <= 0 || m.termHeight <= 0 {
		return ""
	}
	if m.termWidth < minTermWidth || m.termHeight < minTermHeight {
		return m.renderTooSmall()
	}

	width, height := m.bodySize()
	var body string
	switch {
	case m.snapshot != nil:
		body = m.root.View(width, height)
	case m.err != nil:
		body = m.renderError(width, height)
	default:
		body = m.renderLoading(width, height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTitleBar(), body, m.renderFooter())
}

func (m Model) renderTooSmall() string {
	msg := fmt.Sprintf("Terminal too small\nneed %dx%d", minTermWidth, minTermHeight)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, errorTitleStyle.Render(msg))
}

// renderTitleBar is the first line, tinted with the condition's title color.
func (m Model) renderTitleBar() string {
	text := "Weather"
	if m.snapshot != nil {
		loc := m.snapshot.Location
		text = fmt.Sprintf("Weather · %s", loc.City)
		if loc.Country != "" {
			text += ", " + loc.Country
		}
		text += " · " + m.snapshot.Forecast.Today.Condition
	}
	return titleBarStyle.Width(m.termWidth).Render(truncate(text, m.termWidth-2))
}

func (m Model) renderLoading(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		m.spinner.View()+" Fetching weather...")
}

func (m Model) renderError(width, height int) string {
	title := "Could not load the weather"
	hint := fmt.Sprintf("press %s to retry, %s to quit", m.cfg.Keys.Refresh, m.cfg.Keys.Quit)
	switch {
	case isOffline(m.err):
		title = "You are offline"
	case errors.Is(m.err, weather.ErrMissingAPIKey):
		hint = "set api_key in config.toml or OPENWEATHER_API_KEY in .env, then " + hint
	}

	lines := []string{errorTitleStyle.Render(title), ""}
	for _, l := range wrapText(m.err.Error(), max(width-4, 10)) {
		lines = append(lines, errorTextStyle.Render(l))
	}
	lines = append(lines, "", helpStyle.Render(hint))

	block := lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (m Model) renderFooter() string {
	keys := m.cfg.Keys
	var left string
	switch {
	case m.statusMessage != "" && m.statusPositive:
		left = statusPositiveStyle.Render(m.statusMessage)
	case m.statusMessage != "":
		left = statusNegativeStyle.Render(m.statusMessage)
	case m.loading && m.snapshot != nil:
		left = " " + m.spinner.View() + helpStyle.Render(" refreshing")
	default:
		left = helpStyle.Render(fmt.Sprintf(" %s refresh · %s copy · %s map · %s quit",
			keys.Refresh, keys.Copy, keys.OpenMap, keys.Quit))
	}

	var right string
	switch {
	case !m.networkKnown:
	case m.networkOnline:
		right = onlineStyle.Render("● online")
	default:
		right = offlineStyle.Render("● offline")
	}
	if mode := m.Mode(); mode != layout.Unset {
		right += helpStyle.Render(" " + mode.String() + " ")
	}

	gap := m.termWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.termWidth).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}
