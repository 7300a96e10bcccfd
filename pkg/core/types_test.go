package core

import "testing"

func TestTurnTable(t *testing.T) {
	cases := []struct {
		from Direction
		turn Turn
		want Direction
	}{
		{Right, TurnRight, Down},
		{Up, TurnRight, Right},
		{Left, TurnRight, Up},
		{Down, TurnRight, Left},
		{Right, TurnLeft, Up},
		{Up, TurnLeft, Left},
		{Left, TurnLeft, Down},
		{Down, TurnLeft, Right},
	}
	for _, tc := range cases {
		if got := tc.from.Turn(tc.turn); got != tc.want {
			t.Fatalf("%v turn %c = %v, expected %v", tc.from, tc.turn, got, tc.want)
		}
	}
}

func TestFourTurnsReturnHome(t *testing.T) {
	for d := Right; d <= Down; d++ {
		l, r := d, d
		for i := 0; i < 4; i++ {
			l = l.Turn(TurnLeft)
			r = r.Turn(TurnRight)
		}
		if l != d || r != d {
			t.Fatalf("four turns from %v ended at left=%v right=%v", d, l, r)
		}
		if back := d.Turn(TurnLeft).Turn(TurnRight); back != d {
			t.Fatalf("left then right from %v ended at %v", d, back)
		}
	}
}

func TestUnitVectors(t *testing.T) {
	expects := map[Direction]Point{
		Right: {1, 0},
		Up:    {0, 1},
		Left:  {-1, 0},
		Down:  {0, -1},
	}
	for d, want := range expects {
		if got := d.Vector(); got != want {
			t.Fatalf("%v vector = %v, expected %v", d, got, want)
		}
	}
}

func TestUnknownTurnKeepsHeading(t *testing.T) {
	if Turn('S').Valid() {
		t.Fatal("S must not be a valid turn")
	}
	if got := Up.Turn(Turn('S')); got != Up {
		t.Fatalf("unknown turn changed heading to %v", got)
	}
}

func TestPointKeysDistinguishSigns(t *testing.T) {
	// "1_-1" style string keys collide in some encodings; struct keys must not.
	m := map[Point]int{}
	pts := []Point{{1, -1}, {-1, 1}, {11, -1}, {1, -11}, {-1, -1}, {1, 1}}
	for i, p := range pts {
		m[p] = i
	}
	if len(m) != len(pts) {
		t.Fatalf("expected %d distinct keys, got %d", len(pts), len(m))
	}
}
