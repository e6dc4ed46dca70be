package ports

import "time"

// Clock abstracts the wall clock so testimonial ages are testable.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns the real wall clock.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
