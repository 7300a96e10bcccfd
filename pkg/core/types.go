package core

import "fmt"

// Point is a grid coordinate. It is comparable and used directly as a map key.
type Point struct {
	X, Y int64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is one of the four cardinal headings. Adjacent values are 90°
// apart, so turning is arithmetic modulo 4.
type Direction uint8

const (
	Right Direction = iota
	Up
	Left
	Down
)

var unitVectors = [4]Point{
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Down:  {X: 0, Y: -1},
}

var directionNames = [4]string{"right", "up", "left", "down"}

// Vector returns the unit step for the heading.
func (d Direction) Vector() Point { return unitVectors[d&3] }

// Turn rotates the heading by t.
func (d Direction) Turn(t Turn) Direction {
	switch t {
	case TurnRight:
		return (d + 3) % 4
	case TurnLeft:
		return (d + 1) % 4
	}
	return d
}

func (d Direction) String() string {
	if d > Down {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Turn is a rule outcome. There is no straight-ahead rule.
type Turn byte

const (
	TurnLeft  Turn = 'L'
	TurnRight Turn = 'R'
)

// Valid reports whether t is a known turn.
func (t Turn) Valid() bool { return t == TurnLeft || t == TurnRight }
