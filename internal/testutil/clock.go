// Package testutil provides deterministic time and token sources for tests
// and golden scenario comparison.
package testutil

import (
	"sync"
	"time"
)

// StepClock hands out strictly increasing timestamps for tests.
//
// Each call to Now advances by a fixed step from a fixed base, so the same
// scenario run twice produces byte-identical snapshot timestamps. Inject it
// into a History via history.WithNow(clock.Now).
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu   sync.Mutex
	base time.Time
	step time.Duration
	n    int
}

// NewStepClock creates a clock starting at base. The first call to Now
// returns base + step.
func NewStepClock(base time.Time, step time.Duration) *StepClock {
	return &StepClock{base: base, step: step}
}

// NewScenarioClock creates the step clock used by golden scenarios: a fixed
// UTC epoch advancing one second per snapshot.
func NewScenarioClock() *StepClock {
	return NewStepClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Second)
}

// Now returns the next timestamp.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.base.Add(time.Duration(c.n) * c.step)
}

// Reset rewinds the clock to its base. After Reset, the next call to Now
// returns base + step again.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}
