package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepDue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.SetMaxBurst(100)

	// The constructor primes one tick so the first frame steps immediately.
	if got := fs.Due(); got != 1 {
		t.Fatalf("first Due = %d, expected 1", got)
	}
	clock.advance(50 * time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due after half a tick = %d, expected 0", got)
	}
	clock.advance(260 * time.Millisecond)
	if got := fs.Due(); got != 3 {
		t.Fatalf("Due after 310ms total = %d, expected 3", got)
	}
}

func TestFixedStepBurstCap(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(100)
	fs.now = clock.now
	fs.SetMaxBurst(5)
	fs.Due()

	clock.advance(time.Second)
	if got := fs.Due(); got != 5 {
		t.Fatalf("Due after stall = %d, expected cap 5", got)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("dropped time was replayed: Due = %d", got)
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, expected 60 TPS default", fs.Interval())
	}
}
