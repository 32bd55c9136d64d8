package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/yulelog/internal/palette"
	"github.com/san-kum/yulelog/internal/render"
)

const defaultFill = "#c0c0c0"

// FrameToSVG renders a frame as monospace glyphs on a dark background.
// cell is the glyph height in pixels; glyphs are cell*0.6 wide.
func FrameToSVG(frame *render.Frame, cell float64) string {
	if frame == nil {
		return ""
	}
	if cell <= 0 {
		cell = 14
	}
	cw := cell * 0.6
	width := float64(frame.Width) * cw
	height := float64(frame.Height) * cell

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="%.1f">
`, width, height, width, height, cell))

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			if c.Glyph == ' ' || c.Glyph == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, float64(x)*cw, float64(y+1)*cell-cell*0.2, fill(c.Color), html.EscapeString(string(c.Glyph))))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func fill(c palette.Color) string {
	if cc, ok := c.RGB(); ok {
		return cc.Hex()
	}
	return defaultFill
}
