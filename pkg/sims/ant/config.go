package ant

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds the rule and display hints for an ant simulation.
type Config struct {
	Behavior string

	// StepsPerTick is how many ant moves a host performs per frame.
	StepsPerTick int

	ColorFrom uint32
	ColorTo   uint32
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Behavior:     "RLR",
		StepsPerTick: 8,
		ColorFrom:    0x000000,
		ColorTo:      0x1177EE,
	}
}

// FromMap overlays flag-style key/value pairs onto base. Known keys are
// behavior, steps_per_tick, color_from and color_to.
func FromMap(base Config, cfg map[string]string) (Config, error) {
	c := base
	for k, v := range cfg {
		switch k {
		case "behavior":
			if _, err := ParseBehavior(v); err != nil {
				return base, err
			}
			c.Behavior = v
		case "steps_per_tick":
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || parsed < 1 {
				return base, fmt.Errorf("steps_per_tick: want a positive integer, got %q", v)
			}
			c.StepsPerTick = parsed
		case "color_from", "color_to":
			parsed, err := ParseColor(v)
			if err != nil {
				return base, fmt.Errorf("%s: %w", k, err)
			}
			if k == "color_from" {
				c.ColorFrom = parsed
			} else {
				c.ColorTo = parsed
			}
		default:
			return base, fmt.Errorf("unknown setting %q", k)
		}
	}
	return c, nil
}

// ParseColor reads a 24-bit RGB value written as 0xRRGGBB, #RRGGBB or a
// plain decimal integer.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	base := 0
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		s, base = rest, 16
	}
	v, err := strconv.ParseUint(s, base, 24)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
