package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/DarkTime312/Weather-App/internal/animation"
	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/core"
	"github.com/DarkTime312/Weather-App/internal/layout"
	"github.com/DarkTime312/Weather-App/internal/weather"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusDuration  = 3 * time.Second
	networkInterval = 30 * time.Second
	minTermWidth    = 20
	minTermHeight   = 8
	// requests per fetch: location, forecast and some slack
	fetchTimeoutFactor = 4
)

var errOffline = errors.New("no network interface is online")

type Model struct {
	cfg       config.Config
	configDir string
	source    Source
	override  func(*config.Config)
	online    func() bool
	goos      string

	termWidth  int
	termHeight int
	Quitting   bool

	spinner  spinner.Model
	loading  bool
	fetchID  int
	err      error
	snapshot *Snapshot

	networkKnown  bool
	networkOnline bool

	root        *layout.Grid
	controller  *layout.Controller
	temperature *temperatureBlock
	location    *locationBlock
	canvas      *animationCanvas
	forecast    *forecastStrip

	statusMessage      string
	statusPositive     bool
	nextTimerID        int
	statusClearTimerID int
}

// NewModel builds the widget model. The first fetch starts from Init.
func NewModel(bundle config.ConfigBundle, source Source) Model {
	m := Model{
		cfg:       bundle.Config,
		configDir: bundle.ConfigDir,
		source:    source,
		online:    func() bool { return core.CheckNetworkStatus().Online },
		goos:      runtime.GOOS,
		root:      layout.NewGrid(),
		loading:   true,
		fetchID:   1,
	}
	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Line
	m.spinner.Style = spinnerStyle
	return m
}

// WithConfigOverride sets a function applied to every reloaded config, so
// command line flags survive a config file change.
func (m Model) WithConfigOverride(f func(*config.Config)) Model {
	m.override = f
	return m
}

func schedulerConfig(cfg config.Config) animation.Config {
	poll, quiet, frame := cfg.Animation.Timings()
	return animation.Config{PollInterval: poll, QuietPeriod: quiet, FrameInterval: frame}
}

func forecastEntries(f weather.Forecast) []ForecastEntry {
	entries := make([]ForecastEntry, 0, len(f.Upcoming))
	for _, r := range f.Upcoming {
		entries = append(entries, ForecastEntry{
			Day:         core.DayName(r.Date, false),
			Temperature: core.TemperatureLabel(r.Temperature),
			Condition:   r.Condition,
		})
	}
	return entries
}

func (m Model) fetchCmd(id int) tea.Cmd {
	source, cfg, online := m.source, m.cfg, m.online
	return func() tea.Msg {
		if online != nil && !online() {
			return offlineMsg{id: id}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeoutFactor*cfg.Timeout())
		defer cancel()
		snap, err := source.Load(ctx, cfg)
		if err != nil {
			return fetchFailedMsg{id: id, err: err}
		}
		return snapshotMsg{id: id, snapshot: snap}
	}
}

// startFetch begins a new fetch. Results of older fetches are dropped.
func (m *Model) startFetch() tea.Cmd {
	m.fetchID++
	m.loading = true
	return tea.Batch(m.fetchCmd(m.fetchID), m.spinner.Tick)
}

func refreshTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func checkNetworkStatusCmd() tea.Cmd {
	return func() tea.Msg {
		status := core.CheckNetworkStatus()
		return networkStatusMsg{online: status.Online, t: status.Time}
	}
}

func networkTick() tea.Cmd {
	return tea.Tick(networkInterval, func(time.Time) tea.Msg {
		return checkNetworkStatusCmd()()
	})
}

// applySnapshot pushes fetched data into the widgets, creating them on the
// first call. Nothing is changed when the data cannot be shown.
func (m *Model) applySnapshot(s Snapshot) (tea.Cmd, error) {
	style, err := m.cfg.Condition(s.Forecast.Today.Condition)
	if err != nil {
		return nil, err
	}

	var cmds []tea.Cmd
	if m.controller == nil {
		scheduler, err := animation.New(s.Frames, schedulerConfig(m.cfg))
		if err != nil {
			return nil, err
		}
		m.temperature = newTemperatureBlock(m.root)
		m.location = newLocationBlock(m.root)
		m.canvas = newAnimationCanvas(m.root, scheduler)
		m.forecast = newForecastStrip(m.root)
		m.controller = layout.NewController(m.root, breakpointsOf(m.cfg), rootLayouts,
			m.temperature, m.location, m.canvas, m.forecast)
	} else {
		cmd, err := m.canvas.scheduler.SetFrames(s.Frames)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	applyConditionStyles(style)
	m.spinner.Style = spinnerStyle
	log.Printf("Palette: %s (main=%s title=%s)", s.Forecast.Today.Condition, style.Main, style.Title)

	today := s.Forecast.Today
	m.temperature.Set(core.TemperatureLabel(today.Temperature), core.TemperatureLabel(today.FeelsLike))
	m.location.Set(s.Location.City, s.Location.Country, core.FormatDate(today.Date))
	if err := m.forecast.SetData(forecastEntries(s.Forecast), s.Icons); err != nil {
		log.Printf("Forecast strip: %v", err)
	}

	m.snapshot = &s
	m.err = nil
	cmds = append(cmds, m.relayout(), tea.SetWindowTitle(fmt.Sprintf("Weather: %s", s.Location.City)))
	return tea.Batch(cmds...), nil
}

// applyConfig swaps in a reloaded config: breakpoints, palette, timings and
// cell size.
func (m *Model) applyConfig(cfg config.Config) (tea.Cmd, error) {
	if m.snapshot != nil {
		style, err := cfg.Condition(m.snapshot.Forecast.Today.Condition)
		if err != nil {
			return nil, err
		}
		applyConditionStyles(style)
		m.spinner.Style = spinnerStyle
	}
	m.cfg = cfg
	if m.controller != nil {
		m.controller.SetBreakpoints(breakpointsOf(cfg))
	}
	if m.canvas != nil {
		m.canvas.scheduler.SetConfig(schedulerConfig(cfg))
	}
	return m.relayout(), nil
}

func (m Model) bodySize() (width, height int) {
	return m.termWidth, max(m.termHeight-2, 0)
}

// Mode is the active layout mode, Unset until data and a size are known.
func (m Model) Mode() layout.Mode {
	if m.controller == nil {
		return layout.Unset
	}
	return m.controller.Active()
}

// relayout classifies the window and tells every widget its cell size.
func (m *Model) relayout() tea.Cmd {
	if m.controller == nil || m.termWidth <= 0 || m.termHeight <= 0 {
		return nil
	}
	px, py := windowPixels(m.cfg, m.termWidth, m.termHeight)
	if _, _, err := m.controller.Resize(px, py); err != nil {
		log.Printf("Relayout: %v", err)
	}
	return m.root.Configure(m.bodySize())
}

func (m *Model) scheduleStatusClearTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.statusClearTimerID = id
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

func (m *Model) setStatus(message string, positive bool) tea.Cmd {
	m.statusMessage = message
	m.statusPositive = positive
	if strings.TrimSpace(message) == "" {
		m.statusClearTimerID = 0
		return nil
	}
	return m.scheduleStatusClearTimer()
}

func (m Model) summary() string {
	if m.snapshot == nil {
		return ""
	}
	return weather.Summary(m.snapshot.Location, m.snapshot.Forecast)
}
