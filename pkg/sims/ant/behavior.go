package ant

import (
	"strings"

	"mad-ant/pkg/core"
)

// Behavior is an immutable rule string. Character i is the turn taken on a
// cell of color i, so its length is the number of colors.
type Behavior struct {
	rule string
}

// ParseBehavior uppercases s and checks that it is a non-empty string of L
// and R turns.
func ParseBehavior(s string) (Behavior, error) {
	rule := strings.ToUpper(s)
	if rule == "" {
		return Behavior{}, &core.InvalidBehaviorError{Behavior: s, Index: -1, Reason: "empty rule"}
	}
	for i, r := range rule {
		if r > 0x7f || !core.Turn(r).Valid() {
			return Behavior{}, &core.InvalidBehaviorError{Behavior: s, Index: i, Rune: r, Reason: "turns must be L or R"}
		}
	}
	return Behavior{rule: rule}, nil
}

// MustParseBehavior is ParseBehavior for rules known at compile time.
func MustParseBehavior(s string) Behavior {
	b, err := ParseBehavior(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Len reports the number of colors in the automaton.
func (b Behavior) Len() int { return len(b.rule) }

func (b Behavior) String() string { return b.rule }

// TurnFor returns the turn for a cell of the given color.
func (b Behavior) TurnFor(color int) (core.Turn, error) {
	if color < 0 || color >= len(b.rule) {
		return 0, &core.InvalidBehaviorError{Behavior: b.rule, Index: color, Reason: "color outside rule"}
	}
	t := core.Turn(b.rule[color])
	if !t.Valid() {
		return 0, &core.InvalidBehaviorError{Behavior: b.rule, Index: color, Rune: rune(t), Reason: "turns must be L or R"}
	}
	return t, nil
}
