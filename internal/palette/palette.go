package palette

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a "#rrggbb" hex string or a named terminal color such as "blue".
// Named colors follow the terminal theme. The empty Color means the terminal
// default.
type Color string

const Default Color = ""

// Palette pairs a glyph ramp with a color ramp.
type Palette struct {
	Name   string
	Glyphs []rune
	Colors []Color
}

var (
	// Contrib mimics the GitHub contribution graph.
	Contrib = Palette{
		Name:   "contrib",
		Glyphs: []rune{' ', ' ', '⬝', '⯀', '⯀', '◼', '◼', '■', '■', '■'},
		Colors: []Color{
			"black",
			"#9be9a8",
			"#40c463",
			"#30a14e",
			"#216e39",
		},
	}

	// Fire runs from blue through yellow and orange up to red.
	Fire = Palette{
		Name:   "fire",
		Glyphs: []rune{' ', ' ', ' ', ':', '^', '*', 'x', 's', 'S', '#', '$'},
		Colors: []Color{
			"black",   // no heat
			"#87ceeb", // sky blue
			"blue",
			"yellow",
			"#ffa500", // orange
			"red",     // hottest
		},
	}

	Palettes = []Palette{Fire, Contrib}
)

// Select returns the contribution palette when contribs is set.
func Select(contribs bool) Palette {
	if contribs {
		return Contrib
	}
	return Fire
}

func Lookup(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// ColorBucket quantizes a heat value into 0..5.
func ColorBucket(v int) int {
	switch {
	case v > 20:
		return 5
	case v > 15:
		return 4
	case v > 10:
		return 3
	case v > 5:
		return 2
	case v > 0:
		return 1
	default:
		return 0
	}
}

// GlyphBucket maps v linearly onto [0, n) with saturation at 25.
func GlyphBucket(v, n int) int {
	if n <= 0 || v <= 0 {
		return 0
	}
	idx := v * n / 25
	if idx > n-1 {
		return n - 1
	}
	return idx
}

func (p Palette) Color(v int) Color {
	if len(p.Colors) == 0 {
		return Default
	}
	idx := ColorBucket(v)
	if idx >= len(p.Colors) {
		idx = len(p.Colors) - 1
	}
	return p.Colors[idx]
}

func (p Palette) Glyph(v int) rune {
	if len(p.Glyphs) == 0 {
		return ' '
	}
	return p.Glyphs[GlyphBucket(v, len(p.Glyphs))]
}

// Terminal resolves c with tcell's color table.
func (c Color) Terminal() tcell.Color {
	if c == Default {
		return tcell.ColorDefault
	}
	return tcell.GetColor(string(c))
}

// RGB returns the true color of c. ok is false for Default and unknown
// values; named colors resolve to their nominal RGB.
func (c Color) RGB() (colorful.Color, bool) {
	if strings.HasPrefix(string(c), "#") {
		cc, err := colorful.Hex(string(c))
		return cc, err == nil
	}
	tc := c.Terminal()
	if !tc.Valid() {
		return colorful.Color{}, false
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// ANSI returns the terminal palette index of a named color, or -1 for true
// colors and invalid values.
func (c Color) ANSI() int {
	tc := c.Terminal()
	if !tc.Valid() || tc.IsRGB() {
		return -1
	}
	return int(tc - tcell.ColorValid)
}
