package render

import (
	"github.com/san-kum/yulelog/internal/fire"
	"github.com/san-kum/yulelog/internal/palette"
)

const (
	// MaskedRows are always drawn blank in fire mode.
	MaskedRows = 5
	TickerRows = 2
)

type Renderer struct {
	pal      palette.Palette
	contribs bool
	ticker   bool
}

func NewRenderer(contribs, reserveTicker bool) *Renderer {
	return &Renderer{
		pal:      palette.Select(contribs),
		contribs: contribs,
		ticker:   reserveTicker,
	}
}

func (r *Renderer) Palette() palette.Palette { return r.pal }

// Draw writes every visible grid cell onto c. The masked top rows only
// affect output; the grid keeps its values.
func (r *Renderer) Draw(c Canvas, g *fire.Grid) {
	w, h := g.Width(), g.Height()
	cw, ch := c.Size()
	for i := 0; i < w*h; i++ {
		row, col := i/w, i%w
		if row >= ch || col >= cw {
			continue
		}
		if r.ticker && row >= h-TickerRows {
			continue
		}
		if !r.contribs && row < MaskedRows {
			c.SetCell(col, row, ' ', palette.Default)
			continue
		}
		v := g.At(col, row)
		c.SetCell(col, row, r.pal.Glyph(v), r.pal.Color(v))
	}
}
