//go:build ebiten

package ui

import (
	"image/color"

	"mad-ant/pkg/core"
	"mad-ant/pkg/sims/ant"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type stateProvider interface {
	State() ant.State
}

// Overlay draws the ant marker on top of the grid.
type Overlay struct {
	sim     stateProvider
	showAnt bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim stateProvider) *Overlay {
	o := &Overlay{sim: sim, showAnt: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the marker with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAnt = !o.showAnt
	}
}

// Draw marks the ant's cell. geo maps view pixels (one per cell, top row
// first) to the screen; min and rows describe that view.
func (o *Overlay) Draw(screen *ebiten.Image, geo ebiten.GeoM, min core.Point, rows int, zoom float64) {
	if !o.showAnt {
		return
	}
	pos := o.sim.State().Pos
	col := float64(pos.X - min.X)
	row := float64(int64(rows-1) - (pos.Y - min.Y))
	sx, sy := geo.Apply(col, row)

	size := zoom
	if size < 3 {
		size = 3
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(sx+zoom/2-size/2, sy+zoom/2-size/2)
	op.ColorScale.Scale(1, 0.2, 0.2, 1)
	screen.DrawImage(o.pixel, op)
}
