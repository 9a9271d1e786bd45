package strutil

import "time"

// Clock is the time source for expiry checks.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
