// Package ant implements a generalized multi-color Langton's ant on a sparse
// unbounded grid.
package ant

import (
	"image/color"

	"mad-ant/pkg/core"
	"mad-ant/pkg/grid"
	"mad-ant/pkg/ramp"
)

// Engine runs one ant over one grid. Engines share no state, so separate
// engines may be stepped from separate goroutines.
type Engine struct {
	cfg      Config
	behavior Behavior
	observer grid.Observer
	grid     *grid.Grid

	ant     Ant
	enabled bool
	ticks   uint64
	fault   error
}

// State is a copy of the engine's scalar state.
type State struct {
	Pos     core.Point
	Dir     core.Direction
	Ticks   uint64
	Started bool
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithObserver routes cell notifications to obs.
func WithObserver(obs grid.Observer) Option {
	return func(e *Engine) { e.observer = obs }
}

// New returns an engine for the given rule using default display settings.
func New(behavior string, opts ...Option) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Behavior = behavior
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig returns an engine configured from cfg. The rule is validated
// here rather than on first use.
func NewWithConfig(cfg Config, opts ...Option) (*Engine, error) {
	b, err := ParseBehavior(cfg.Behavior)
	if err != nil {
		return nil, err
	}
	cfg.Behavior = b.String()
	e := &Engine{cfg: cfg, behavior: b}
	for _, opt := range opts {
		opt(e)
	}
	e.grid = grid.New(e.observer)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "ant " + e.behavior.String() }

// Config returns the normalized configuration.
func (e *Engine) Config() Config { return e.cfg }

// Behavior returns the rule driving the ant.
func (e *Engine) Behavior() Behavior { return e.behavior }

// Colors reports the number of cell colors.
func (e *Engine) Colors() int { return e.behavior.Len() }

// Grid exposes the visited cells. Callers must not step concurrently with reads.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Palette returns one display color per cell color.
func (e *Engine) Palette() ([]color.RGBA, error) {
	return ramp.Palette(e.cfg.ColorFrom, e.cfg.ColorTo, e.behavior.Len())
}

// State returns the ant position, heading and tick count.
func (e *Engine) State() State {
	return State{Pos: e.ant.Pos, Dir: e.ant.Dir, Ticks: e.ticks, Started: e.enabled}
}

// Start places the ant at the origin facing down. It may be called once.
func (e *Engine) Start() error {
	if e.enabled {
		return core.ErrAlreadyStarted
	}
	e.ant = Ant{Pos: core.Point{}, Dir: core.Down}
	e.enabled = true
	return nil
}

// Step advances the simulation by n ticks. A broken color cycle is fatal: the
// error is kept and returned by every later call.
func (e *Engine) Step(n int) error {
	if n < 0 {
		return core.ErrNegativeSteps
	}
	if !e.enabled {
		return core.ErrNotStarted
	}
	if e.fault != nil {
		return e.fault
	}
	for i := 0; i < n; i++ {
		if err := e.tick(); err != nil {
			e.fault = err
			return err
		}
	}
	return nil
}

func (e *Engine) tick() error {
	cell := e.grid.At(e.ant.Pos.X, e.ant.Pos.Y)
	c := cell.Color

	turn, err := e.behavior.TurnFor(c)
	if err != nil {
		return err
	}
	e.ant.Dir = e.ant.Dir.Turn(turn)

	next := (c + 1) % e.behavior.Len()
	if cell.SetColor(next) && e.observer != nil {
		e.observer.CellChanged(cell.Handle, next)
	}

	e.ant.Forward()
	e.ticks++
	return nil
}
