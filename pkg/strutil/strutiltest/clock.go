// Package strutiltest provides test doubles for code built on strutil.
package strutiltest

import (
	"sync"
	"time"

	"strhelpers/pkg/strutil"
)

var _ strutil.Clock = (*Clock)(nil)

// Clock is a settable strutil.Clock. It is safe for concurrent use, so one
// instance can back a service that serves parallel requests in tests.
type Clock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewClock returns a Clock stopped at t.
func NewClock(t time.Time) *Clock {
	return &Clock{current: t}
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}
