package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/native"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(m.fetchID),
		m.spinner.Tick,
		checkNetworkStatusCmd(),
		refreshTick(m.cfg.RefreshInterval()),
		WatchConfigCmd(m.configDir),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, m.relayout()

	case snapshotMsg:
		if msg.id != m.fetchID {
			return m, nil
		}
		m.loading = false
		refreshed := m.snapshot != nil
		cmd, err := m.applySnapshot(msg.snapshot)
		if err != nil {
			return m, m.fetchFailed(err)
		}
		log.Printf("Weather loaded for %s: %s", msg.snapshot.Location.City, msg.snapshot.Forecast.Today.Condition)
		if refreshed {
			return m, tea.Batch(cmd, m.setStatus("Weather updated", true))
		}
		return m, cmd

	case fetchFailedMsg:
		if msg.id != m.fetchID {
			return m, nil
		}
		m.loading = false
		return m, m.fetchFailed(msg.err)

	case offlineMsg:
		if msg.id != m.fetchID {
			return m, nil
		}
		m.loading = false
		m.networkKnown, m.networkOnline = true, false
		log.Printf("Offline, fetch skipped")
		if m.snapshot == nil {
			m.err = errOffline
			return m, nil
		}
		return m, m.setStatus("Offline, refresh skipped", false)

	case refreshTickMsg:
		next := refreshTick(m.cfg.RefreshInterval())
		if m.loading {
			return m, next
		}
		return m, tea.Batch(next, m.startFetch())

	case networkStatusMsg:
		m.networkKnown = true
		m.networkOnline = msg.online
		return m, networkTick()

	case statusClearMsg:
		if msg.id != m.statusClearTimerID {
			return m, nil
		}
		m.statusMessage = ""
		m.statusClearTimerID = 0
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), false)
		}
		return m, m.setStatus(fmt.Sprintf("Copied forecast (%s)", msg.method), true)

	case mapOpenedMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Could not open map: %v", msg.err), false)
		}
		return m, m.setStatus("Opened weather map", true)

	case ConfigChangedMsg:
		log.Printf("Config file change detected: %s", msg.Path)
		watch := WatchConfigCmd(m.configDir)
		bundle, err := config.LoadConfig(m.configDir)
		if err != nil {
			log.Printf("Config reload failed: %v", err)
			return m, tea.Batch(watch, m.setStatus(fmt.Sprintf("Config reload failed: %v", err), false))
		}
		if m.override != nil {
			m.override(&bundle.Config)
		}
		cmd, err := m.applyConfig(bundle.Config)
		if err != nil {
			log.Printf("Config reload rejected: %v", err)
			return m, tea.Batch(watch, m.setStatus(fmt.Sprintf("Config reload rejected: %v", err), false))
		}
		return m, tea.Batch(cmd, watch, m.setStatus("Config reloaded", true))

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.canvas != nil {
		return m, m.canvas.Update(msg)
	}
	return m, nil
}

func (m *Model) fetchFailed(err error) tea.Cmd {
	log.Printf("Fetch failed: %v", err)
	if m.snapshot == nil {
		m.err = err
		return nil
	}
	return m.setStatus(fmt.Sprintf("Refresh failed: %v", err), false)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.cfg.Keys
	switch {
	case IsQuit(keys, msg):
		m.Quitting = true
		return m, tea.Quit

	case IsRefresh(keys, msg):
		if m.loading {
			return m, m.setStatus("Refresh already running", false)
		}
		m.err = nil
		return m, m.startFetch()

	case IsCopy(keys, msg):
		text := m.summary()
		if text == "" {
			return m, m.setStatus("Nothing to copy yet", false)
		}
		goos := m.goos
		return m, func() tea.Msg {
			method, err := copyToClipboard(text, goos)
			return copiedMsg{method: method, err: err}
		}

	case IsOpenMap(keys, msg):
		if m.snapshot == nil {
			return m, m.setStatus("No location yet", false)
		}
		url := m.cfg.MapURL(m.snapshot.Location.Latitude, m.snapshot.Location.Longitude)
		return m, func() tea.Msg {
			return mapOpenedMsg{err: native.Open(url)}
		}
	}
	return m, nil
}

// isOffline reports whether err came from a skipped fetch.
func isOffline(err error) bool {
	return errors.Is(err, errOffline)
}
