package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStarted is returned when a simulation is stepped before Start.
	ErrNotStarted = errors.New("simulation not started")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("simulation already started")
	// ErrNegativeSteps is returned when a negative tick count is requested.
	ErrNegativeSteps = errors.New("step count must not be negative")
)

// InvalidBehaviorError reports a rule string that cannot drive an ant. It is
// also returned if a cell color ever indexes outside the rule, which means
// the color cycle was broken and the simulation cannot continue.
type InvalidBehaviorError struct {
	Behavior string
	Index    int
	Rune     rune
	Reason   string
}

func (e *InvalidBehaviorError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid behavior %q: %s", e.Behavior, e.Reason)
	}
	if e.Rune != 0 {
		return fmt.Sprintf("invalid behavior %q at index %d (%q): %s", e.Behavior, e.Index, e.Rune, e.Reason)
	}
	return fmt.Sprintf("invalid behavior %q at index %d: %s", e.Behavior, e.Index, e.Reason)
}

// DegenerateColorCountError reports a color ramp request for fewer than one
// color.
type DegenerateColorCountError struct {
	N int
}

func (e *DegenerateColorCountError) Error() string {
	return fmt.Sprintf("color ramp needs at least one color, got %d", e.N)
}
