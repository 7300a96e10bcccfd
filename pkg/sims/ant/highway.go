package ant

import (
	"errors"

	"mad-ant/pkg/core"
)

// Highway describes a periodic translation of the ant.
type Highway struct {
	// Period is the number of ticks after which the ant's motion repeats.
	Period int
	// Drift is the displacement covered during one period.
	Drift core.Point
	// Ticks is the engine tick count at which observation began.
	Ticks uint64
}

var errHighwayWindow = errors.New("highway detection needs a positive window and period")

// DetectHighway steps e by window+maxPeriod ticks while recording the ant's
// trail, then reports the smallest period up to maxPeriod whose displacement
// is non-zero and identical across the whole trail.
func DetectHighway(e *Engine, window, maxPeriod int) (Highway, bool, error) {
	if window < 1 || maxPeriod < 1 {
		return Highway{}, false, errHighwayWindow
	}
	start := e.State()
	if !start.Started {
		return Highway{}, false, core.ErrNotStarted
	}

	trail := make([]core.Point, 0, window+maxPeriod+1)
	trail = append(trail, start.Pos)
	for len(trail) < cap(trail) {
		if err := e.Step(1); err != nil {
			return Highway{}, false, err
		}
		trail = append(trail, e.ant.Pos)
	}

	for p := 1; p <= maxPeriod; p++ {
		drift := trail[p].Sub(trail[0])
		if drift == (core.Point{}) {
			continue
		}
		if periodic(trail, p, drift) {
			return Highway{Period: p, Drift: drift, Ticks: start.Ticks}, true, nil
		}
	}
	return Highway{}, false, nil
}

func periodic(trail []core.Point, p int, drift core.Point) bool {
	for t := p; t < len(trail); t++ {
		if trail[t].Sub(trail[t-p]) != drift {
			return false
		}
	}
	return true
}
