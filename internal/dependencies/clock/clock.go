// Package clock abstracts time.Now so the rate limiter's fixed windows
// can be driven deterministically in tests.
package clock

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

var _ Clock = (*RealClock)(nil)

// New returns a Clock backed by the system clock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
