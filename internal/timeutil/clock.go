// Package timeutil provides a testable abstraction over the wall clock.
package timeutil

import "time"

// Clock supplies the current time. The VBO emitter stamps each document
// with its creation time, so production code uses RealClock and tests
// pin the stamp with FixedClock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock pinned to a single instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
