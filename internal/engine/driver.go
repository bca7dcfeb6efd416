package engine

import "time"

// DefaultMaxDelta bounds the delta handed to a single tick after a stall.
const DefaultMaxDelta = 250 * time.Millisecond

// Clock is a monotonic time source. The session never reads it directly;
// a Driver turns its readings into tick deltas.
type Clock interface {
	Now() time.Time
}

// ManualClock only moves when told to. Useful for fixed-rate hosts and tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Driver converts clock readings into session ticks. Elapsed time accumulates
// until one step's worth is available; the whole accumulation is then handed
// to a single tick, clamped to maxDelta.
type Driver struct {
	clock    Clock
	step     time.Duration
	maxDelta time.Duration

	last    time.Time
	acc     time.Duration
	started bool
}

// NewDriver creates a driver ticking roughly every step.
// A non-positive maxDelta selects DefaultMaxDelta.
func NewDriver(clock Clock, step, maxDelta time.Duration) *Driver {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Driver{
		clock:    clock,
		step:     step,
		maxDelta: maxDelta,
	}
}

// Advance reads the clock and ticks s if a step has elapsed.
// The first call after creation or Resync only records the clock reading.
func (d *Driver) Advance(s *Session) (TickResult, bool) {
	now := d.clock.Now()
	if !d.started {
		d.last = now
		d.started = true
		return TickResult{}, false
	}

	elapsed := now.Sub(d.last)
	d.last = now
	if elapsed > 0 {
		d.acc += elapsed
	}
	if d.acc < d.step {
		return TickResult{}, false
	}

	dt := min(d.acc, d.maxDelta)
	d.acc = 0
	return s.Tick(dt), true
}

// Resync forgets accumulated time. Call it after a pause so the time spent
// paused is not fed into the next tick.
func (d *Driver) Resync() {
	d.started = false
	d.acc = 0
}
