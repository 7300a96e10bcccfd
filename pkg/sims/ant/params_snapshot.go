package ant

import (
	"fmt"

	"mad-ant/pkg/core"
)

// Parameters reports the rule and run statistics for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	st := e.State()
	groups := []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("behavior", "Behavior", e.behavior.String()),
				core.IntParam("colors", "Colors", int64(e.behavior.Len())),
				core.IntParam("steps_per_tick", "Steps per tick", int64(e.cfg.StepsPerTick)),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.BoolParam("started", "Started", st.Started),
				core.IntParam("ticks", "Ticks", int64(st.Ticks)),
				core.IntParam("cells", "Visited cells", int64(e.grid.Len())),
				core.StringParam("position", "Position", st.Pos.String()),
				core.StringParam("direction", "Heading", st.Dir.String()),
			},
		},
	}
	if min, max, ok := e.grid.Bounds(); ok {
		groups[1].Params = append(groups[1].Params,
			core.StringParam("extent", "Extent", fmt.Sprintf("%dx%d", max.X-min.X+1, max.Y-min.Y+1)))
	}
	return core.ParameterSnapshot{Groups: groups}
}
