package sim

import (
	"github.com/san-kum/yulelog/internal/fire"
	"github.com/san-kum/yulelog/internal/input"
	"github.com/san-kum/yulelog/internal/render"
)

// Config is fixed for the lifetime of a run.
type Config struct {
	Contribs   bool
	Message    string
	Meta       string
	HaveTicker bool
	Speed      int
	NumEvents  int
	Smoke      int
}

func (c Config) Params() fire.Params {
	return fire.Params{Speed: c.Speed, Events: c.NumEvents, Smoke: c.Smoke}
}

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Terminal is the drawing and input surface the frame loop owns.
type Terminal interface {
	render.Canvas
	input.Poller
	ResetColor()
	Show() error
}

type Observer interface {
	OnFrame(frame int, g *fire.Grid)
}
