package animation

import (
	"errors"
	"image"
	"log"
	"sync/atomic"
	"time"

	"github.com/DarkTime312/Weather-App/internal/assets"
	tea "github.com/charmbracelet/bubbletea"
)

// State is the lifecycle phase of a Scheduler.
type State int

const (
	Idle State = iota
	Resizing
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resizing:
		return "resizing"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// ErrNoFrames is returned when a scheduler is built without images.
var ErrNoFrames = errors.New("animation: no frames")

// Config holds the debounce and playback timings.
type Config struct {
	PollInterval  time.Duration
	QuietPeriod   time.Duration
	FrameInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval:  50 * time.Millisecond,
		QuietPeriod:   100 * time.Millisecond,
		FrameInterval: 50 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.QuietPeriod < 0 {
		c.QuietPeriod = d.QuietPeriod
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = d.FrameInterval
	}
	return c
}

// Renderer turns one frame into terminal text for a size x size dot square.
type Renderer func(img image.Image, size int) string

type Option func(*Scheduler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func WithRenderer(r Renderer) Option {
	return func(s *Scheduler) { s.render = r }
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type checkMsg struct {
	id  int
	gen int
}

type frameMsg struct {
	id  int
	gen int
}

// Scheduler plays a looping frame set in a resizable area. Resizes pause
// playback; it resumes at the new size once resizes have stopped for the
// quiet period.
type Scheduler struct {
	id     int
	cfg    Config
	frames []image.Image
	render Renderer
	now    func() time.Time

	state        State
	lastResize   time.Time
	checkPending bool
	checkGen     int
	frameGen     int

	width, height    int
	size             int
	centerX, centerY int
	rendered         []string
	index            int
}

func New(frames []image.Image, cfg Config, opts ...Option) (*Scheduler, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	s := &Scheduler{
		id:     nextID(),
		cfg:    cfg.withDefaults(),
		frames: frames,
		render: assets.HalfBlock,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID identifies the scheduler's messages.
func (s *Scheduler) ID() int { return s.id }

func (s *Scheduler) State() State { return s.state }

// Size returns the side of the square the frames were rendered at.
func (s *Scheduler) Size() int { return s.size }

// Center returns the middle of the area, in dots.
func (s *Scheduler) Center() (x, y int) { return s.centerX, s.centerY }

func (s *Scheduler) Index() int { return s.index }

// Frame returns the rendered current frame, or "" while not animating.
func (s *Scheduler) Frame() string {
	if s.state != Animating || len(s.rendered) == 0 {
		return ""
	}
	return s.rendered[s.index]
}

// SetConfig swaps the timings. Pending ticks keep the interval they were
// scheduled with.
func (s *Scheduler) SetConfig(cfg Config) {
	s.cfg = cfg.withDefaults()
}

// SetFrames swaps the frame set and restarts the resize cycle at the
// current size.
func (s *Scheduler) SetFrames(frames []image.Image) (tea.Cmd, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	s.frames = frames
	s.index = 0
	return s.Resize(s.width, s.height), nil
}

// Resize records a new area size in dots. Playback stops immediately and a
// debounce check is started unless one is already pending.
func (s *Scheduler) Resize(width, height int) tea.Cmd {
	s.width, s.height = width, height
	s.state = Resizing
	s.rendered = nil
	s.frameGen++
	s.lastResize = s.now()

	if s.checkPending {
		return nil
	}
	s.checkPending = true
	s.checkGen++
	return s.checkTick(s.checkGen)
}

// Update handles the scheduler's own tick messages. Anything else, and
// ticks from an outdated chain, is ignored.
func (s *Scheduler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case checkMsg:
		if msg.id != s.id || msg.gen != s.checkGen || !s.checkPending {
			return nil
		}
		if s.now().Sub(s.lastResize) <= s.cfg.QuietPeriod {
			return s.checkTick(msg.gen)
		}
		s.checkPending = false
		return s.start()

	case frameMsg:
		if msg.id != s.id || msg.gen != s.frameGen || s.state != Animating {
			return nil
		}
		s.index = (s.index + 1) % len(s.rendered)
		return s.frameTick(msg.gen)
	}
	return nil
}

func (s *Scheduler) start() tea.Cmd {
	size := min(s.width, s.height)
	if size <= 0 {
		// Nothing to draw into; wait for the next resize.
		return nil
	}
	s.size = size
	s.centerX, s.centerY = s.width/2, s.height/2

	s.rendered = make([]string, len(s.frames))
	for i, f := range s.frames {
		s.rendered[i] = s.render(f, size)
	}
	s.index = 0
	s.state = Animating
	log.Printf("animation %d: playing %d frames at %d dots", s.id, len(s.frames), size)
	return s.frameTick(s.frameGen)
}

func (s *Scheduler) checkTick(gen int) tea.Cmd {
	id := s.id
	return tea.Tick(s.cfg.PollInterval, func(time.Time) tea.Msg {
		return checkMsg{id: id, gen: gen}
	})
}

func (s *Scheduler) frameTick(gen int) tea.Cmd {
	id := s.id
	return tea.Tick(s.cfg.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}
