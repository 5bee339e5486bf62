package clock

import (
	"sync"
	"time"
)

// Clock is the time source for date-sensitive logic such as due dates and sweeps.
type Clock interface {
	Now() time.Time
}

type clock struct{}

// New returns the wall clock.
func New() Clock {
	return clock{}
}

func (clock) Now() time.Time {
	return time.Now()
}

// ManagedClock is a hand-driven clock for tests.
type ManagedClock struct {
	mu     sync.Mutex
	start  time.Time
	offset time.Duration
}

func NewManaged(start time.Time) *ManagedClock {
	return &ManagedClock{start: start}
}

func (c *ManagedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start.Add(c.offset)
}

// WarpForward advances the clock and returns the new time.
func (c *ManagedClock) WarpForward(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset += d
	return c.start.Add(c.offset)
}
