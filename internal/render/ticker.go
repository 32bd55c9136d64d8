package render

import "github.com/san-kum/yulelog/internal/palette"

const TickerColor palette.Color = "white"

// Ticker scrolls a message line and a meta line across the two bottom rows.
// Both lines share one offset, which wraps on the message length; the meta
// line wraps on its own length when drawn, so lines of different lengths
// drift apart over time.
type Ticker struct {
	msg, meta []rune
	speed     int
	offset    int
}

// NewTicker returns nil when there is nothing to scroll.
func NewTicker(message, meta string, speed int) *Ticker {
	if message == "" {
		return nil
	}
	if speed < 1 {
		speed = 1
	}
	if speed > 10 {
		speed = 10
	}
	return &Ticker{
		msg:   []rune(message),
		meta:  []rune(meta),
		speed: speed,
	}
}

func (t *Ticker) Offset() int { return t.offset }

// Interval is the number of frames between offset advances.
func (t *Ticker) Interval() int { return 11 - t.speed }

// Draw paints both lines on the bottom two rows of c.
func (t *Ticker) Draw(c Canvas) {
	w, h := c.Size()
	if h < TickerRows || len(t.msg) == 0 {
		return
	}
	msgRow, metaRow := h-2, h-1
	for x := 0; x < w; x++ {
		c.SetCell(x, msgRow, t.msg[(t.offset+x)%len(t.msg)], TickerColor)
		me := ' '
		if len(t.meta) > 0 {
			me = t.meta[(t.offset+x)%len(t.meta)]
		}
		c.SetCell(x, metaRow, me, TickerColor)
	}
}

// Advance moves the offset by speed on every Interval-th frame.
func (t *Ticker) Advance(frame int) {
	if len(t.msg) == 0 {
		return
	}
	if frame%t.Interval() == 0 {
		t.offset = (t.offset + t.speed) % len(t.msg)
	}
}
