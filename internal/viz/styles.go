package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/yulelog/internal/palette"
	"github.com/san-kum/yulelog/internal/render"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	KeyHint    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

var bucketRanges = []string{"<=0", "1-5", "6-10", "11-15", "16-20", ">20"}

func colorStyle(c palette.Color) lipgloss.Style {
	if c == palette.Default {
		return lipgloss.NewStyle()
	}
	if idx := c.ANSI(); idx >= 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(idx)))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
}

// FrameView renders f with one styled run per stretch of equal color.
func FrameView(f *render.Frame) string {
	lines := make([]string, f.Height)
	for y := 0; y < f.Height; y++ {
		var b, run strings.Builder
		cur := f.At(0, y).Color
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if c.Color != cur {
				b.WriteString(colorStyle(cur).Render(run.String()))
				run.Reset()
				cur = c.Color
			}
			run.WriteRune(c.Glyph)
		}
		b.WriteString(colorStyle(cur).Render(run.String()))
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Swatch shows each color bucket of p with its heat range and sample glyphs.
func Swatch(p palette.Palette) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(p.Name) + "\n")
	for i, c := range p.Colors {
		label := bucketLabel(i, len(p.Colors))
		block := colorStyle(c).Render("████")
		sb.WriteString(fmt.Sprintf("%s %s %s\n", LabelStyle.Render(label), block, ValueStyle.Render(string(c))))
	}
	sb.WriteString(LabelStyle.Render("glyphs") + " " + ValueStyle.Render(string(p.Glyphs)) + "\n")
	return sb.String()
}

// bucketLabel names the heat range of color bucket i in a palette of n
// colors. The last bucket absorbs every higher bucket.
func bucketLabel(i, n int) string {
	if i == n-1 && i > 0 && i < len(bucketRanges)-1 {
		return fmt.Sprintf(">%d", (i-1)*5)
	}
	return bucketRanges[min(i, len(bucketRanges)-1)]
}
