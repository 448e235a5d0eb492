package ui

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DarkTime312/Weather-App/internal/animation"
	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/layout"
	"github.com/DarkTime312/Weather-App/internal/weather"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeSource struct {
	snap  Snapshot
	err   error
	calls int
}

func (f *fakeSource) Load(ctx context.Context, cfg config.Config) (Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

func tinyImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 0x30, G: 0x79, B: 0xff, A: 0xff})
		}
	}
	return img
}

func testSnapshot(k int) Snapshot {
	day := func(d int) time.Time { return time.Date(2024, time.October, d, 0, 0, 0, 0, time.UTC) }
	s := Snapshot{
		Location: weather.Location{City: "Tehran", Country: "Iran", Latitude: 35.6892, Longitude: 51.389},
		Forecast: weather.Forecast{
			Today: weather.Reading{Date: day(21), Temperature: 18.6, FeelsLike: 17.2, Condition: "Clear"},
		},
		Frames: []image.Image{tinyImage(), tinyImage()},
	}
	for i := 0; i < k; i++ {
		s.Forecast.Upcoming = append(s.Forecast.Upcoming, weather.Reading{
			Date: day(22 + i), Temperature: float64(10 + i), Condition: "Rain",
		})
		s.Icons = append(s.Icons, tinyImage())
	}
	return s
}

func newTestModel() (Model, *fakeSource) {
	src := &fakeSource{snap: testSnapshot(5)}
	m := NewModel(config.ConfigBundle{Config: config.DefaultConfig()}, src)
	m.online = func() bool { return true }
	return m, src
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	tm, cmd := m.Update(msg)
	return tm.(Model), cmd
}

// loaded returns a model that has seen a window size and a snapshot.
func loaded(t *testing.T, cols, rows int) Model {
	t.Helper()
	m, _ := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: cols, Height: rows})
	m, _ = update(t, m, snapshotMsg{id: m.fetchID, snapshot: testSnapshot(5)})
	if m.snapshot == nil {
		t.Fatalf("snapshot not applied: %v", m.err)
	}
	return m
}

// 150x44 cells at 8x16 px is 1200x704 px.
func TestUpdate_LargeWindowIsHorizontalRight(t *testing.T) {
	m := loaded(t, 150, 44)

	if m.Mode() != layout.HorizontalRight {
		t.Fatalf("mode = %v, want horizontal-right", m.Mode())
	}
	p, ok := m.root.Placement(m.forecast)
	if !ok {
		t.Fatal("forecast strip not placed")
	}
	if p.Row != 0 || p.Column != 1 || p.RowSpan != 4 {
		t.Errorf("strip placement = %+v", p)
	}
	cols, rows := m.forecast.grid.Size()
	if cols != 1 || rows != 9 {
		t.Errorf("strip grid = %dx%d, want 1x9 (rows axis)", cols, rows)
	}
	if m.loading {
		t.Error("still loading after the snapshot arrived")
	}
}

func TestUpdate_ModeTransitions(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		mode       layout.Mode
		stripCols  int
		stripRows  int
		stripShown bool
	}{
		{"Normal", 100, 30, layout.Normal, 0, 0, false},
		{"Vertical bottom", 100, 40, layout.VerticalBottom, 9, 1, true},
		{"Vertical right", 130, 30, layout.VerticalRight, 9, 1, true},
		{"Horizontal right", 150, 44, layout.HorizontalRight, 1, 9, true},
	}

	m := loaded(t, 10, 10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ = update(t, m, tea.WindowSizeMsg{Width: tt.cols, Height: tt.rows})
			if m.Mode() != tt.mode {
				t.Fatalf("mode = %v, want %v", m.Mode(), tt.mode)
			}
			_, shown := m.root.Placement(m.forecast)
			if shown != tt.stripShown {
				t.Errorf("strip placed = %v, want %v", shown, tt.stripShown)
			}
			cols, rows := m.forecast.grid.Size()
			if tt.stripShown && (cols != tt.stripCols || rows != tt.stripRows) {
				t.Errorf("strip grid = %dx%d, want %dx%d", cols, rows, tt.stripCols, tt.stripRows)
			}
			if n := len(m.forecast.grid.Placed()); tt.stripShown && n != 9 {
				t.Errorf("strip cells = %d, want 9", n)
			}
			for _, w := range []layout.Widget{m.temperature, m.location, m.canvas} {
				if _, ok := m.root.Placement(w); !ok {
					t.Errorf("%T not placed", w)
				}
			}
		})
	}
}

func TestUpdate_ResizeWithinModeKeepsCells(t *testing.T) {
	m := loaded(t, 150, 44)
	first := m.forecast.grid.Placed()[0]

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	if m.forecast.grid.Placed()[0] != first {
		t.Error("strip rebuilt without a mode transition")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.forecast.grid.Placed()[0] == first {
		t.Error("strip kept its cells across a mode transition")
	}
}

// The canvas is told its cell size in half-block dots and the scheduler
// pauses until resizing settles.
func TestUpdate_CanvasFollowsCellSize(t *testing.T) {
	m := loaded(t, 150, 44)

	// Body is 150x42; two uniform columns of 75, four uniform rows of 10.
	if m.canvas.width != 75 || m.canvas.height != 10 {
		t.Errorf("canvas cell = %dx%d, want 75x10", m.canvas.width, m.canvas.height)
	}
	if m.canvas.scheduler.State() != animation.Resizing {
		t.Errorf("scheduler state = %v, want resizing", m.canvas.scheduler.State())
	}
}

func TestUpdate_StaleResultsIgnored(t *testing.T) {
	m, _ := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = update(t, m, snapshotMsg{id: m.fetchID - 1, snapshot: testSnapshot(5)})
	if m.snapshot != nil {
		t.Error("stale snapshot applied")
	}
	m, _ = update(t, m, fetchFailedMsg{id: m.fetchID + 1, err: errors.New("boom")})
	if m.err != nil {
		t.Error("stale failure applied")
	}
}

func TestUpdate_FetchFailure(t *testing.T) {
	m, _ := newTestModel()
	m, _ = update(t, m, fetchFailedMsg{id: m.fetchID, err: weather.ErrMissingAPIKey})
	if !errors.Is(m.err, weather.ErrMissingAPIKey) {
		t.Fatalf("err = %v", m.err)
	}

	// A failed refresh keeps the data and only reports the failure.
	m = loaded(t, 100, 30)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, cmd := update(t, m, fetchFailedMsg{id: m.fetchID, err: errors.New("timeout")})
	if m.snapshot == nil || m.err != nil {
		t.Error("failed refresh dropped the data")
	}
	if m.statusMessage == "" || m.statusPositive {
		t.Errorf("status = %q positive=%v", m.statusMessage, m.statusPositive)
	}
	if cmd == nil {
		t.Error("status message without a clear timer")
	}
}

func TestUpdate_Offline(t *testing.T) {
	m, _ := newTestModel()
	m, _ = update(t, m, offlineMsg{id: m.fetchID})
	if !isOffline(m.err) {
		t.Errorf("err = %v, want offline", m.err)
	}

	m = loaded(t, 100, 30)
	m.loading = true
	m, _ = update(t, m, offlineMsg{id: m.fetchID})
	if m.statusMessage != "Offline, refresh skipped" {
		t.Errorf("status = %q", m.statusMessage)
	}
	if m.snapshot == nil {
		t.Error("offline refresh dropped the data")
	}
}

func TestFetchCmd(t *testing.T) {
	m, src := newTestModel()

	m.online = func() bool { return false }
	if msg, ok := m.fetchCmd(7)().(offlineMsg); !ok || msg.id != 7 {
		t.Errorf("offline fetch = %#v", msg)
	}
	if src.calls != 0 {
		t.Error("source called while offline")
	}

	m.online = func() bool { return true }
	if msg, ok := m.fetchCmd(8)().(snapshotMsg); !ok || msg.id != 8 {
		t.Errorf("online fetch = %#v", msg)
	}

	src.err = weather.ErrLocationNotFound
	msg, ok := m.fetchCmd(9)().(fetchFailedMsg)
	if !ok || !errors.Is(msg.err, weather.ErrLocationNotFound) {
		t.Errorf("failing fetch = %#v", msg)
	}
}

func TestUpdate_UnknownConditionIsAnError(t *testing.T) {
	m, _ := newTestModel()
	snap := testSnapshot(2)
	snap.Forecast.Today.Condition = "Drizzle"
	m, _ = update(t, m, snapshotMsg{id: m.fetchID, snapshot: snap})
	if !errors.Is(m.err, config.ErrUnknownCondition) {
		t.Errorf("err = %v, want ErrUnknownCondition", m.err)
	}
	if m.controller != nil {
		t.Error("widgets built for data that cannot be shown")
	}
}

func TestUpdate_RefreshPushesIntoExistingWidgets(t *testing.T) {
	m := loaded(t, 100, 40)
	temp := m.temperature

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if !m.loading {
		t.Fatal("refresh key did not start a fetch")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.statusMessage != "Refresh already running" {
		t.Errorf("status = %q", m.statusMessage)
	}

	snap := testSnapshot(3)
	snap.Forecast.Today.Temperature = 2.5
	m, _ = update(t, m, snapshotMsg{id: m.fetchID, snapshot: snap})
	if m.temperature != temp {
		t.Error("refresh replaced the temperature widget")
	}
	if m.temperature.value.text != "2°" {
		t.Errorf("temperature = %q, want 2°", m.temperature.value.text)
	}
	if n := len(m.forecast.grid.Placed()); n != 5 {
		t.Errorf("strip cells = %d, want 5 for 3 days", n)
	}
	if m.statusMessage != "Weather updated" {
		t.Errorf("status = %q", m.statusMessage)
	}
}

func TestUpdate_RefreshTick(t *testing.T) {
	m := loaded(t, 100, 30)
	id := m.fetchID
	m, cmd := update(t, m, refreshTickMsg{})
	if cmd == nil || !m.loading || m.fetchID != id+1 {
		t.Errorf("tick did not start a fetch: loading=%v id=%d", m.loading, m.fetchID)
	}

	m, _ = update(t, m, refreshTickMsg{})
	if m.fetchID != id+1 {
		t.Error("tick started a second fetch while one was running")
	}
}

func TestUpdate_StatusClearIsIDGuarded(t *testing.T) {
	m, _ := newTestModel()
	m.setStatus("first", true)
	oldID := m.statusClearTimerID
	m.setStatus("second", true)

	m, _ = update(t, m, statusClearMsg{id: oldID})
	if m.statusMessage != "second" {
		t.Errorf("stale timer cleared the status: %q", m.statusMessage)
	}
	m, _ = update(t, m, statusClearMsg{id: m.statusClearTimerID})
	if m.statusMessage != "" {
		t.Errorf("status = %q, want cleared", m.statusMessage)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		m, _ := newTestModel()
		m, cmd := update(t, m, msg)
		if !m.Quitting || cmd == nil {
			t.Errorf("%q did not quit", msg.String())
		}
	}
}

func TestUpdate_CopyAndMapNeedData(t *testing.T) {
	m, _ := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if m.statusMessage != "Nothing to copy yet" {
		t.Errorf("status = %q", m.statusMessage)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	if m.statusMessage != "No location yet" {
		t.Errorf("status = %q", m.statusMessage)
	}

	m, _ = update(t, m, copiedMsg{method: "xclip"})
	if m.statusMessage != "Copied forecast (xclip)" || !m.statusPositive {
		t.Errorf("status = %q", m.statusMessage)
	}
	m, _ = update(t, m, mapOpenedMsg{err: errors.New("no browser")})
	if m.statusPositive {
		t.Error("failed map open reported as success")
	}
}

func TestUpdate_ConfigReloadMovesBreakpoints(t *testing.T) {
	dir := t.TempDir()
	m := loaded(t, 150, 44)
	m.configDir = dir
	if m.Mode() != layout.HorizontalRight {
		t.Fatalf("mode = %v", m.Mode())
	}

	cfg := "[layout]\nbreakpoint_width = 2000\n\n[animation]\nframe_ms = 200\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	m, cmd := update(t, m, ConfigChangedMsg{Path: filepath.Join(dir, "config.toml")})
	if cmd == nil {
		t.Error("watcher not re-armed")
	}
	// 1200 px is now narrow; 704 px is still tall.
	if m.Mode() != layout.VerticalBottom {
		t.Errorf("mode = %v, want vertical-bottom", m.Mode())
	}
	if m.statusMessage != "Config reloaded" {
		t.Errorf("status = %q", m.statusMessage)
	}
}

func TestUpdate_ConfigReloadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	m := loaded(t, 150, 44)
	m.configDir = dir
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not toml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, ConfigChangedMsg{})
	if m.Mode() != layout.HorizontalRight {
		t.Errorf("mode changed to %v on a broken config", m.Mode())
	}
	if m.statusPositive {
		t.Error("broken config reported as reloaded")
	}
}

func TestUpdate_ConfigReloadKeepsOverrides(t *testing.T) {
	dir := t.TempDir()
	m := loaded(t, 150, 44)
	m.configDir = dir
	m = m.WithConfigOverride(func(cfg *config.Config) {
		cfg.City = "Tehran"
		cfg.Units = "imperial"
	})

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("city = \"Paris\"\nunits = \"metric\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, ConfigChangedMsg{})
	if m.cfg.City != "Tehran" || m.cfg.Units != "imperial" {
		t.Errorf("city, units = %q, %q; want the overrides", m.cfg.City, m.cfg.Units)
	}
}
