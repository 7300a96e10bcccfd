package core

import "time"

// FixedStep converts wall-clock time into whole ticks at a steady
// ticks-per-second rate. Hosts use it to spread long runs over many short
// Step calls.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxBurst: 4, now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// SetMaxBurst caps how many ticks a single Due call may report after a stall.
func (f *FixedStep) SetMaxBurst(n int) {
	if n < 1 {
		n = 1
	}
	f.maxBurst = n
}

// Interval reports the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports how many ticks have elapsed since the previous call. Time
// beyond the burst cap is dropped rather than replayed.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > f.maxBurst {
		n = f.maxBurst
		f.accumulator = 0
	}
	return n
}
