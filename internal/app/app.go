//go:build ebiten

package app

import (
	"image"
	"math"

	"mad-ant/internal/ui"
	"mad-ant/pkg/sims/ant"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts an ant session to the ebiten.Game interface.
type Game struct {
	cfg     ant.Config
	session *Session
	hud     *ui.HUD
	overlay *ui.Overlay

	cols, rows    int
	width, height int

	view  *ebiten.Image
	frame *image.RGBA
	zoom  float64
	base  float64

	paused   bool
	tickOnce bool
}

// New constructs a Game drawing into a width x height area whose initial view
// spans cols x rows cells.
func New(cfg ant.Config, cols, rows, width, height int) (*Game, error) {
	g := &Game{cfg: cfg, cols: cols, rows: rows, width: width, height: height}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards the current run and starts a fresh engine with the same rule.
func (g *Game) Reset() error {
	s, err := NewSession(g.cfg, g.cols, g.rows)
	if err != nil {
		return err
	}
	g.session = s
	g.hud = ui.NewHUD(s.Engine, hudWidth)
	g.overlay = ui.NewOverlay(s.Engine)
	g.base = math.Min(float64(g.width)/float64(g.cols), float64(g.height)/float64(g.rows))
	g.zoom = g.base
	g.tickOnce = false
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		n := g.cfg.StepsPerTick
		if g.paused {
			n = 1
		}
		if err := g.session.Advance(n); err != nil {
			return err
		}
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the visible window of the grid, scaled to fit.
func (g *Game) Draw(screen *ebiten.Image) {
	min, cols, rows := g.session.Canvas.View()
	g.frame = g.session.Canvas.Render(g.frame, min, cols, rows, 1)
	if g.view == nil || g.view.Bounds().Dx() != cols || g.view.Bounds().Dy() != rows {
		if g.view != nil {
			g.view.Dispose()
		}
		g.view = ebiten.NewImage(cols, rows)
	}
	g.view.WritePixels(g.frame.Pix)

	target := g.base * g.session.Canvas.Scale()
	g.zoom += (target - g.zoom) * 0.1

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(cols)/2, -float64(rows)/2)
	op.GeoM.Scale(g.zoom, g.zoom)
	op.GeoM.Translate(float64(g.width)/2, float64(g.height)/2)
	screen.DrawImage(g.view, op)

	g.overlay.Draw(screen, op.GeoM, min, rows, g.zoom)
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + hudWidth, g.height
}
