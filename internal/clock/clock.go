// Package clock abstracts the time source used by the accounting engine.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real uses the system time in UTC
type Real struct{}

// NewReal creates a system clock
func NewReal() Real {
	return Real{}
}

// Now returns the current system time
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Simulated is a manually driven clock for tests and replays
type Simulated struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulated creates a simulated clock starting at the given time
func NewSimulated(start time.Time) *Simulated {
	return &Simulated{current: start}
}

// Now returns the simulated current time
func (c *Simulated) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the simulated time forward
func (c *Simulated) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// Set jumps to a specific instant
func (c *Simulated) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}
