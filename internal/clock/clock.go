// Package clock abstracts the current time so scheduling and streak logic
// can be tested against fixed instants.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Intended for tests.
type Fixed struct {
	Instant time.Time
}

func (c Fixed) Now() time.Time {
	return c.Instant
}
