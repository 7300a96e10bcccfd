package app

import (
	"mad-ant/internal/render"
	"mad-ant/pkg/ramp"
	"mad-ant/pkg/sims/ant"
)

// Session is a started engine whose cells are mirrored onto a canvas.
type Session struct {
	Engine *ant.Engine
	Canvas *render.Canvas
}

// NewSession builds and starts an engine for cfg with a canvas observer whose
// palette matches the rule length.
func NewSession(cfg ant.Config, cols, rows int) (*Session, error) {
	b, err := ant.ParseBehavior(cfg.Behavior)
	if err != nil {
		return nil, err
	}
	pal, err := ramp.Palette(cfg.ColorFrom, cfg.ColorTo, b.Len())
	if err != nil {
		return nil, err
	}
	canvas, err := render.NewCanvas(pal, cols, rows)
	if err != nil {
		return nil, err
	}
	e, err := ant.NewWithConfig(cfg, ant.WithObserver(canvas))
	if err != nil {
		return nil, err
	}
	if err := e.Start(); err != nil {
		return nil, err
	}
	return &Session{Engine: e, Canvas: canvas}, nil
}

// Advance steps the engine by n ticks and surfaces any notification the
// canvas could not apply.
func (s *Session) Advance(n int) error {
	if err := s.Engine.Step(n); err != nil {
		return err
	}
	return s.Canvas.Err()
}
