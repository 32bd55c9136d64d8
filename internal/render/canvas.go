package render

import (
	"strings"

	"github.com/san-kum/yulelog/internal/palette"
)

// Canvas is anything cells can be drawn onto.
type Canvas interface {
	Size() (width, height int)
	SetCell(x, y int, glyph rune, color palette.Color)
}

type Cell struct {
	Glyph rune
	Color palette.Color
}

// Frame is an in-memory Canvas.
type Frame struct {
	Width, Height int
	Cells         []Cell
}

func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f := &Frame{
		Width:  w,
		Height: h,
		Cells:  make([]Cell, w*h),
	}
	f.Clear()
	return f
}

func (f *Frame) Size() (int, int) { return f.Width, f.Height }

func (f *Frame) SetCell(x, y int, glyph rune, color palette.Color) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Cells[x+y*f.Width] = Cell{Glyph: glyph, Color: color}
}

// At returns the cell at (x, y); out of range yields a blank cell.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{Glyph: ' '}
	}
	return f.Cells[x+y*f.Width]
}

func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = Cell{Glyph: ' '}
	}
}

// Row returns the glyphs of row y as a string.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < f.Width; x++ {
		b.WriteRune(f.Cells[x+y*f.Width].Glyph)
	}
	return b.String()
}

func (f *Frame) String() string {
	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		b.WriteString(f.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}
