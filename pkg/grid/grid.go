// Package grid stores the cells of an unbounded plane sparsely. Only visited
// cells exist; every other coordinate is implicitly color 0.
package grid

import (
	"cmp"
	"slices"

	"mad-ant/pkg/core"
)

// Handle is an opaque token a display layer hands back on cell creation. The
// grid stores it and replays it on every color change for that cell.
type Handle int

// Observer receives cell lifecycle notifications. Both methods are called
// synchronously from inside At and the simulation step.
type Observer interface {
	CellCreated(x, y int64) Handle
	CellChanged(h Handle, color int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Created func(x, y int64) Handle
	Changed func(h Handle, color int)
}

// CellCreated implements Observer.
func (o ObserverFuncs) CellCreated(x, y int64) Handle {
	if o.Created == nil {
		return 0
	}
	return o.Created(x, y)
}

// CellChanged implements Observer.
func (o ObserverFuncs) CellChanged(h Handle, color int) {
	if o.Changed != nil {
		o.Changed(h, color)
	}
}

// Cell is one visited position.
type Cell struct {
	X, Y   int64
	Color  int
	Handle Handle
}

// SetColor changes the cell color and reports whether it actually changed.
func (c *Cell) SetColor(color int) bool {
	if c.Color == color {
		return false
	}
	c.Color = color
	return true
}

// Pos returns the cell coordinate.
func (c *Cell) Pos() core.Point { return core.Point{X: c.X, Y: c.Y} }

// Grid owns every visited cell, keyed by coordinate.
type Grid struct {
	cells    map[core.Point]*Cell
	observer Observer

	min, max core.Point
}

// New returns an empty grid. obs may be nil.
func New(obs Observer) *Grid {
	return &Grid{cells: make(map[core.Point]*Cell), observer: obs}
}

// At returns the cell at (x, y), creating it with color 0 on first visit.
func (g *Grid) At(x, y int64) *Cell {
	key := core.Point{X: x, Y: y}
	if c, ok := g.cells[key]; ok {
		return c
	}
	c := &Cell{X: x, Y: y}
	if g.observer != nil {
		c.Handle = g.observer.CellCreated(x, y)
	}
	g.grow(key)
	g.cells[key] = c
	return c
}

// Lookup returns the cell at (x, y) without creating it.
func (g *Grid) Lookup(x, y int64) (*Cell, bool) {
	c, ok := g.cells[core.Point{X: x, Y: y}]
	return c, ok
}

// ColorAt returns the color at (x, y), 0 for unvisited positions.
func (g *Grid) ColorAt(x, y int64) int {
	if c, ok := g.cells[core.Point{X: x, Y: y}]; ok {
		return c.Color
	}
	return 0
}

// Len reports how many cells have been visited.
func (g *Grid) Len() int { return len(g.cells) }

// Bounds returns the inclusive bounding box of visited cells.
func (g *Grid) Bounds() (min, max core.Point, ok bool) {
	if len(g.cells) == 0 {
		return core.Point{}, core.Point{}, false
	}
	return g.min, g.max, true
}

// Each calls fn for every visited cell in unspecified order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Snapshot returns copies of all cells ordered by row, then column.
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for _, c := range g.cells {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

func (g *Grid) grow(p core.Point) {
	if len(g.cells) == 0 {
		g.min, g.max = p, p
		return
	}
	g.min.X = min(g.min.X, p.X)
	g.min.Y = min(g.min.Y, p.Y)
	g.max.X = max(g.max.X, p.X)
	g.max.Y = max(g.max.Y, p.Y)
}
