package testutil

import (
	"sync"
	"time"
)

// DefaultEpoch is the first instant returned by a clock from NewSteppingClock(time.Time{}, ...).
var DefaultEpoch = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

// SteppingClock provides deterministic timestamps for tests.
//
// Each call to Now returns the current instant and then advances it by a
// fixed step, so consecutive sessions get distinct, predictable CreatedAt
// values. It satisfies store.Clock.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
	step  time.Duration
}

// NewSteppingClock creates a clock starting at start. A zero start uses
// DefaultEpoch.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	if start.IsZero() {
		start = DefaultEpoch
	}
	return &SteppingClock{start: start, now: start, step: step}
}

// Now returns the current instant and advances the clock by one step.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Peek returns the instant the next Now call will return.
func (c *SteppingClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Reset rewinds the clock to its start.
func (c *SteppingClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.start
}
