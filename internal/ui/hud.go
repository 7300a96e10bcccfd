//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-ant/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

const (
	hudLineHeight = 16
	hudPadding    = 10
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudTitle      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	hudGroup      = color.RGBA{R: 120, G: 170, B: 240, A: 255}
	hudText       = color.RGBA{R: 190, G: 190, B: 200, A: 255}
)

var hudHelp = []string{
	"space  pause/resume",
	"n      single move",
	"c      clear",
	"1      ant marker",
	"q      quit",
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	paused     bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	h.snapshot = h.sim.Parameters()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(hudBackground)

	y := hudPadding + hudLineHeight
	title := h.sim.Name()
	if h.paused {
		title += " (paused)"
	}
	text.Draw(h.panel, title, basicfont.Face7x13, hudPadding, y, hudTitle)
	y += hudLineHeight

	for _, group := range h.snapshot.Groups {
		y += hudLineHeight / 2
		text.Draw(h.panel, group.Name, basicfont.Face7x13, hudPadding, y, hudGroup)
		y += hudLineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, fmt.Sprintf("%-14s %s", p.Label, p.Value), basicfont.Face7x13, hudPadding, y, hudText)
			y += hudLineHeight
		}
	}

	y += hudLineHeight / 2
	for _, line := range hudHelp {
		if y > height-hudPadding {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, hudText)
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
