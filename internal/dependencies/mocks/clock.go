package mocks

import (
	"time"

	"github.com/finboard/finboard/internal/dependencies/clock"
)

// MockClock is a Clock frozen at a settable instant. It only moves when a
// test advances it, which makes window-expiry assertions exact.
type MockClock struct {
	now time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock frozen at t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
