package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"mad-ant/pkg/core"
	"mad-ant/pkg/grid"
	"mad-ant/pkg/ramp"
	"mad-ant/pkg/sims/ant"
)

var twoTone = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}

func TestCanvasMirrorsEngine(t *testing.T) {
	pal, err := ramp.Palette(0x000000, 0x1177EE, 3)
	if err != nil {
		t.Fatal(err)
	}
	canvas, err := NewCanvas(pal, 31, 31)
	if err != nil {
		t.Fatal(err)
	}
	e, err := ant.New("RLR", ant.WithObserver(canvas))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.Step(4000); err != nil {
		t.Fatal(err)
	}
	if canvas.Err() != nil {
		t.Fatal(canvas.Err())
	}
	if canvas.Len() != e.Grid().Len() {
		t.Fatalf("canvas tracks %d cells, grid has %d", canvas.Len(), e.Grid().Len())
	}
	e.Grid().Each(func(c *grid.Cell) {
		if got := canvas.ColorAt(c.Pos()); got != c.Color {
			t.Fatalf("canvas color at %v = %d, grid %d", c.Pos(), got, c.Color)
		}
	})
	min, max, _ := e.Grid().Bounds()
	vmin, cols, rows := canvas.View()
	if vmin.X > min.X || vmin.Y > min.Y || vmin.X+int64(cols) <= max.X || vmin.Y+int64(rows) <= max.Y {
		t.Fatalf("view %v %dx%d does not cover bounds %v..%v", vmin, cols, rows, min, max)
	}
}

func TestCanvasPaletteMismatch(t *testing.T) {
	canvas, err := NewCanvas(twoTone, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	e, err := ant.New("RLR", ant.WithObserver(canvas))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.Step(50); err != nil {
		t.Fatal(err)
	}
	if canvas.Err() == nil {
		t.Fatal("expected mismatch error for three colors on a two-color canvas")
	}
}

func TestCanvasUnknownHandle(t *testing.T) {
	canvas, err := NewCanvas(twoTone, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	canvas.CellChanged(3, 1)
	if canvas.Err() == nil {
		t.Fatal("expected error for unknown handle")
	}
}

func TestCanvasGrowsView(t *testing.T) {
	canvas, err := NewCanvas(twoTone, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	canvas.CellCreated(1, 1)
	if canvas.Scale() != 1 {
		t.Fatalf("scale changed for an inside cell: %v", canvas.Scale())
	}
	canvas.CellCreated(2, 0)
	if canvas.Scale() != zoomFactor {
		t.Fatalf("scale = %v, expected %v", canvas.Scale(), zoomFactor)
	}
	if _, cols, rows := canvas.View(); cols != 5 || rows != 5 {
		t.Fatalf("view = %dx%d, expected 5x5", cols, rows)
	}
}

func TestNewCanvasNeedsColors(t *testing.T) {
	if _, err := NewCanvas(nil, 4, 4); err == nil {
		t.Fatal("expected error for empty palette")
	}
}

func TestImageOrientation(t *testing.T) {
	canvas, err := NewCanvas(twoTone, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	// (0,1) is above (0,0), so it lands on the top row.
	h := canvas.CellCreated(0, 1)
	canvas.CellChanged(h, 1)

	img := canvas.Image(core.Point{X: 0, Y: 0}, 1, 2, 3)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 6 {
		t.Fatalf("image bounds = %v", b)
	}
	if got := img.RGBAAt(1, 1); got != twoTone[1] {
		t.Fatalf("top pixel = %v, expected white", got)
	}
	if got := img.RGBAAt(2, 5); got != twoTone[0] {
		t.Fatalf("bottom pixel = %v, expected black", got)
	}
}

func TestRenderReusesFrame(t *testing.T) {
	canvas, err := NewCanvas(twoTone, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	min, cols, rows := canvas.View()
	frame := canvas.Render(nil, min, cols, rows, 1)

	h := canvas.CellCreated(0, 0)
	canvas.CellChanged(h, 1)
	again := canvas.Render(frame, min, cols, rows, 1)
	if again != frame {
		t.Fatal("same-size render allocated a new image")
	}
	if !bytes.Equal(again.Pix, canvas.Image(min, cols, rows, 1).Pix) {
		t.Fatal("reused frame differs from a fresh image")
	}

	canvas.CellCreated(9, 0)
	min, cols, rows = canvas.View()
	grown := canvas.Render(frame, min, cols, rows, 1)
	if grown == frame || grown.Bounds().Dx() != cols || grown.Bounds().Dy() != rows {
		t.Fatalf("grown view %dx%d rendered into %v", cols, rows, grown.Bounds())
	}
}

func TestWritePNG(t *testing.T) {
	canvas, err := NewCanvas(twoTone, 6, 4)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := canvas.WritePNG(&buf, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("png bounds = %v", b)
	}
}

func TestFillPaletteClamps(t *testing.T) {
	buf := make([]byte, 2*4)
	fillPaletteRGBA(buf, []int{7, -1}, 2, 1, 1, twoTone)
	if buf[0] != 255 || buf[4] != 0 {
		t.Fatalf("pixels = %v", buf)
	}
	fillPaletteRGBA(buf, []int{1, 1}, 2, 1, 1, nil)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette must clear, got %v", buf)
		}
	}
}
