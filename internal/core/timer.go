package core

import "time"

// DefaultInterval is the tick period at 1x speed.
const DefaultInterval = 400 * time.Millisecond

// FixedStep decides when the simulation is due for another tick. The caller
// supplies the current time so the cadence can be driven by any loop.
type FixedStep struct {
	base        time.Duration
	speed       Speed
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep with the given base interval. A
// non-positive interval falls back to DefaultInterval.
func NewFixedStep(base time.Duration, speed Speed) *FixedStep {
	if base <= 0 {
		base = DefaultInterval
	}
	fs := &FixedStep{base: base}
	fs.SetSpeed(speed)
	return fs
}

// SetSpeed changes the playback multiplier. It is safe to call from the main loop.
func (f *FixedStep) SetSpeed(s Speed) {
	if s <= 0 {
		s = DefaultSpeed
	}
	f.speed = s
	f.step = s.Scale(f.base)
}

// Speed returns the active multiplier.
func (f *FixedStep) Speed() Speed { return f.speed }

// Interval returns the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets accumulated time, e.g. after the simulation was paused.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick at now.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Don't let a long stall turn into a burst of catch-up ticks.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
