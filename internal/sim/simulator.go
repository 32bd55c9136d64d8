package sim

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/yulelog/internal/fire"
	"github.com/san-kum/yulelog/internal/input"
	"github.com/san-kum/yulelog/internal/render"
)

// FrameDelay is slept after every frame regardless of how long it took.
const FrameDelay = 30 * time.Millisecond

type Simulator struct {
	cfg       Config
	grid      *fire.Grid
	renderer  *render.Renderer
	ticker    *render.Ticker
	src       fire.Source
	sleep     func(time.Duration)
	logger    *log.Logger
	observers []Observer

	state State
	frame int
}

type Option func(*Simulator)

// WithSource sets the injection column source.
func WithSource(src fire.Source) Option {
	return func(s *Simulator) { s.src = src }
}

func WithSleep(fn func(time.Duration)) Option {
	return func(s *Simulator) { s.sleep = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// New sizes the grid once; it is never resized afterwards.
func New(cfg Config, width, height int, opts ...Option) *Simulator {
	var ticker *render.Ticker
	if cfg.HaveTicker {
		ticker = render.NewTicker(cfg.Message, cfg.Meta, cfg.Speed)
	}

	s := &Simulator{
		cfg:      cfg,
		grid:     fire.NewGrid(width, height),
		renderer: render.NewRenderer(cfg.Contribs, ticker != nil),
		ticker:   ticker,
		src:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:    time.Sleep,
		logger:   log.New(io.Discard),
		state:    Running,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) State() State { return s.state }
func (s *Simulator) Frame() int { return s.frame }
func (s *Simulator) Grid() *fire.Grid { return s.grid }
func (s *Simulator) Ticker() *render.Ticker { return s.ticker }
func (s *Simulator) Renderer() *render.Renderer { return s.renderer }

// Stop moves the loop to its terminal state.
func (s *Simulator) Stop() { s.state = Stopped }

// Step computes and draws one frame onto c, then advances the frame counter.
func (s *Simulator) Step(c render.Canvas) {
	s.grid.Step(s.src, s.cfg.Params())
	s.renderer.Draw(c, s.grid)
	if s.ticker != nil {
		s.ticker.Draw(c)
		s.ticker.Advance(s.frame)
	}
	for _, obs := range s.observers {
		obs.OnFrame(s.frame, s.grid)
	}
	s.frame++
}

// Run drives t at a fixed cadence until a quit key arrives, ctx is done, or
// the terminal fails. Terminal errors are returned as *FrameError.
func (s *Simulator) Run(ctx context.Context, t Terminal) error {
	ctrl := input.NewController(t)
	w, h := t.Size()
	s.logger.Info("animation started",
		"width", w, "height", h,
		"contribs", s.cfg.Contribs,
		"ticker", s.ticker != nil,
		"events", s.cfg.NumEvents)

	for s.state == Running {
		select {
		case <-ctx.Done():
			s.state = Stopped
			s.logger.Info("animation canceled", "frames", s.frame)
			return ctx.Err()
		default:
		}

		quit, err := ctrl.Quit()
		if err != nil {
			return s.fail("poll input", err)
		}
		if quit {
			s.state = Stopped
			break
		}

		s.Step(t)
		t.ResetColor()
		if err := t.Show(); err != nil {
			return s.fail("show", err)
		}
		s.sleep(FrameDelay)
	}

	s.logger.Info("animation stopped", "frames", s.frame)
	return nil
}

func (s *Simulator) fail(op string, err error) error {
	s.state = Stopped
	s.logger.Error("terminal failure", "op", op, "frame", s.frame, "err", err)
	return &FrameError{Frame: s.frame, Op: op, Wrapped: err}
}
