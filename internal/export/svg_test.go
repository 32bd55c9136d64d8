package export

import (
	"strings"
	"testing"

	"github.com/san-kum/yulelog/internal/palette"
	"github.com/san-kum/yulelog/internal/render"
)

func TestFrameToSVG(t *testing.T) {
	f := render.NewFrame(4, 2)
	f.SetCell(1, 0, '$', "#ff0000")
	f.SetCell(2, 1, '<', palette.Default)

	svg := FrameToSVG(f, 10)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("missing svg envelope")
	}
	if !strings.Contains(svg, `width="24" height="20"`) {
		t.Errorf("unexpected dimensions in %s", svg)
	}
	if strings.Count(svg, "<text") != 2 {
		t.Errorf("expected 2 glyphs, got %d", strings.Count(svg, "<text"))
	}
	if !strings.Contains(svg, `fill="#ff0000">$</text>`) {
		t.Error("missing colored glyph")
	}
	if !strings.Contains(svg, `fill="`+defaultFill+`">&lt;</text>`) {
		t.Error("glyph should be escaped and use the default fill")
	}
}

func TestFrameToSVGNil(t *testing.T) {
	if FrameToSVG(nil, 10) != "" {
		t.Error("expected empty output for nil frame")
	}
}

func TestFrameToSVGNamedColors(t *testing.T) {
	f := render.NewFrame(3, 1)
	f.SetCell(0, 0, '#', "red")
	f.SetCell(1, 0, '^', "#FFA500")
	f.SetCell(2, 0, 'x', "chartreusey")

	svg := FrameToSVG(f, 10)

	for _, want := range []string{`fill="#ff0000">#</text>`, `fill="#ffa500">^</text>`, `fill="` + defaultFill + `">x</text>`} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %s in %s", want, svg)
		}
	}
}
