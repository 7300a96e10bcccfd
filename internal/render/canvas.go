// Package render turns cell notifications into pixels for display layers.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"mad-ant/pkg/core"
	"mad-ant/pkg/grid"
)

const (
	growFactor = 1.25
	zoomFactor = 0.8
)

var errNoColors = errors.New("canvas needs at least one color")

// Canvas mirrors a grid through its observer notifications. It hands out
// sequential handles and keeps the visible area large enough to hold every
// created cell, zooming out each time a cell lands outside it.
type Canvas struct {
	palette []color.RGBA
	pos     []core.Point
	colors  []int
	index   map[core.Point]int

	viewW, viewH float64
	scale        float64
	err          error

	sample []int
}

// NewCanvas returns a canvas whose initial view spans cols x rows cells
// centered on the origin.
func NewCanvas(palette []color.RGBA, cols, rows int) (*Canvas, error) {
	if len(palette) < 1 {
		return nil, errNoColors
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{
		palette: palette,
		index:   make(map[core.Point]int),
		viewW:   float64(cols),
		viewH:   float64(rows),
		scale:   1,
	}, nil
}

// CellCreated implements grid.Observer.
func (c *Canvas) CellCreated(x, y int64) grid.Handle {
	h := len(c.pos)
	p := core.Point{X: x, Y: y}
	c.pos = append(c.pos, p)
	c.colors = append(c.colors, 0)
	c.index[p] = h

	fx, fy := float64(x), float64(y)
	if fx >= c.viewW/2 || fx <= -c.viewW/2 || fy >= c.viewH/2 || fy <= -c.viewH/2 {
		c.viewW *= growFactor
		c.viewH *= growFactor
		c.scale *= zoomFactor
	}
	return grid.Handle(h)
}

// CellChanged implements grid.Observer. Unknown handles and colors beyond the
// palette are recorded and reported by Err; the first one wins.
func (c *Canvas) CellChanged(h grid.Handle, color int) {
	i := int(h)
	switch {
	case i < 0 || i >= len(c.colors):
		c.fail(fmt.Errorf("unknown cell handle %d", i))
	case color < 0 || color >= len(c.palette):
		c.fail(fmt.Errorf("color %d outside palette of %d; palette and behavior lengths differ", color, len(c.palette)))
	default:
		c.colors[i] = color
	}
}

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Err reports the first notification the canvas could not apply.
func (c *Canvas) Err() error { return c.err }

// Len reports how many cells the canvas tracks.
func (c *Canvas) Len() int { return len(c.pos) }

// Scale is the zoom target; it shrinks by 0.8 each time the view grows.
func (c *Canvas) Scale() float64 { return c.scale }

// Palette returns the colors the canvas draws with.
func (c *Canvas) Palette() []color.RGBA { return c.palette }

// ColorAt returns the displayed color index at p.
func (c *Canvas) ColorAt(p core.Point) int {
	if i, ok := c.index[p]; ok {
		return c.colors[i]
	}
	return 0
}

// View returns the current visible window: its lower-left cell and size.
func (c *Canvas) View() (min core.Point, cols, rows int) {
	cols = int(math.Ceil(c.viewW))
	rows = int(math.Ceil(c.viewH))
	return core.Point{X: -int64(cols / 2), Y: -int64(rows / 2)}, cols, rows
}

// Sample writes the color index of every cell in the window with lower-left
// corner min into dst, top row first. len(dst) must be at least cols*rows.
func (c *Canvas) Sample(dst []int, min core.Point, cols, rows int) {
	for r := 0; r < rows; r++ {
		y := min.Y + int64(rows-1-r)
		for col := 0; col < cols; col++ {
			dst[r*cols+col] = c.ColorAt(core.Point{X: min.X + int64(col), Y: y})
		}
	}
}

// Image renders the window with lower-left corner min, px pixels per cell.
func (c *Canvas) Image(min core.Point, cols, rows, px int) *image.RGBA {
	return c.Render(nil, min, cols, rows, px)
}

// Render is Image drawing into dst, which is reused when its size matches and
// replaced otherwise. The canvas keeps its sample buffer between calls.
func (c *Canvas) Render(dst *image.RGBA, min core.Point, cols, rows, px int) *image.RGBA {
	if px < 1 {
		px = 1
	}
	if n := cols * rows; cap(c.sample) < n {
		c.sample = make([]int, n)
	} else {
		c.sample = c.sample[:n]
	}
	c.Sample(c.sample, min, cols, rows)
	bounds := image.Rect(0, 0, cols*px, rows*px)
	if dst == nil || dst.Rect != bounds {
		dst = image.NewRGBA(bounds)
	}
	fillPaletteRGBA(dst.Pix, c.sample, cols, rows, px, c.palette)
	return dst
}

// WritePNG encodes the current view to w.
func (c *Canvas) WritePNG(w io.Writer, px int) error {
	min, cols, rows := c.View()
	if err := png.Encode(w, c.Image(min, cols, rows, px)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
