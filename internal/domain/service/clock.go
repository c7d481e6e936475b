package service

import "time"

// Clock returns the current time. Tests replace it to drive TTLs and timeouts.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
