package term

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"mad-ant/internal/render"
	"mad-ant/pkg/core"
)

func TestXterm256(t *testing.T) {
	cases := map[color.RGBA]uint8{
		{A: 255}:                          16,
		{R: 255, G: 255, B: 255, A: 255}:  231,
		{R: 255, A: 255}:                  196,
		{R: 0x11, G: 0x77, B: 0xEE, A: 0}: 16 + 0 + 6*2 + 5,
	}
	for c, want := range cases {
		if got := xterm256(c); got != want {
			t.Fatalf("xterm256(%v) = %d, expected %d", c, got, want)
		}
	}
}

func TestRenderPlain(t *testing.T) {
	pal := []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	canvas, err := render.NewCanvas(pal, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	h := canvas.CellCreated(0, 1)
	canvas.CellChanged(h, 1)

	var buf bytes.Buffer
	marker := core.Point{X: 2, Y: 0}
	if err := New(false).Render(&buf, canvas, core.Point{}, 3, 2, &marker); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "@@    " {
		t.Fatalf("top row = %q", lines[0])
	}
	if lines[1] != "    <>" {
		t.Fatalf("bottom row = %q", lines[1])
	}
}

func TestSwatchColored(t *testing.T) {
	pal := []color.RGBA{{A: 255}, {R: 255, A: 255}}
	s := New(true).Swatch(pal)
	if !strings.Contains(s, "\x1b[") {
		t.Fatalf("swatch has no escape codes: %q", s)
	}
	if strings.Count(s, "██") != 2 {
		t.Fatalf("swatch = %q", s)
	}
}
