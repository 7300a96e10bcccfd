package ant

import "mad-ant/pkg/core"

// Ant is the walker's position and heading. It refers to its cell by
// coordinate only; the grid owns the cell.
type Ant struct {
	Pos core.Point
	Dir core.Direction
}

// Forward moves one cell along the current heading.
func (a *Ant) Forward() {
	a.Pos = a.Pos.Add(a.Dir.Vector())
}
