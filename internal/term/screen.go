// Package term is the tcell backend for the frame loop. A Screen owns the
// alternate screen and raw input mode from Open until Close.
package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/yulelog/internal/input"
	"github.com/san-kum/yulelog/internal/palette"
)

var ErrClosed = errors.New("term: screen closed")

type Screen struct {
	s      tcell.Screen
	styles map[palette.Color]tcell.Style
	closed bool
}

// Open initializes the controlling terminal.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return New(s)
}

// New takes ownership of s and initializes it.
func New(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{
		s:      s,
		styles: make(map[palette.Color]tcell.Style),
	}, nil
}

func (s *Screen) Size() (int, int) { return s.s.Size() }

func (s *Screen) SetCell(x, y int, glyph rune, color palette.Color) {
	s.s.SetContent(x, y, glyph, nil, s.style(color))
}

func (s *Screen) style(c palette.Color) tcell.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	st := tcell.StyleDefault
	if c != palette.Default {
		st = st.Foreground(c.Terminal())
	}
	s.styles[c] = st
	return st
}

// ResetColor restores the default style for cells not drawn this frame.
func (s *Screen) ResetColor() {
	s.s.SetStyle(tcell.StyleDefault)
}

func (s *Screen) Show() error {
	if s.closed {
		return ErrClosed
	}
	s.s.Show()
	return nil
}

// PollKey never blocks: it reads one event only when one is queued.
func (s *Screen) PollKey() (input.Key, bool, error) {
	if s.closed {
		return input.Key{}, false, ErrClosed
	}
	if !s.s.HasPendingEvent() {
		return input.Key{}, false, nil
	}
	ev, ok := s.s.PollEvent().(*tcell.EventKey)
	if !ok {
		return input.Key{}, false, nil
	}
	return translate(ev), true, nil
}

func translate(ev *tcell.EventKey) input.Key {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyRune:
		return input.Key{Code: input.KeyRune, Rune: ev.Rune(), Ctrl: ctrl}
	case tcell.KeyEscape:
		return input.Key{Code: input.KeyEscape}
	case tcell.KeyCtrlC:
		return input.Key{Code: input.KeyCtrlC, Ctrl: true}
	}
	return input.Key{Code: input.KeyOther, Ctrl: ctrl}
}

// Close leaves raw mode and the alternate screen. Safe to call more than once.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.s.Fini()
	return nil
}
