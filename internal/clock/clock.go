// Package clock lets the session countdown run against real time in
// production and against a manually advanced clock in tests.
package clock

import "time"

// Clock is the subset of the time package the countdown depends on.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once, in its own goroutine for the real clock, after
	// d has elapsed. The returned Timer cancels the pending call.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stop func() bool
}

// Stop prevents the call from happening. It reports false if the call
// already ran or was stopped before.
func (t *Timer) Stop() bool {
	if t == nil || t.stop == nil {
		return false
	}

	return t.stop()
}

// Real returns a Clock backed by the time package.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	t := time.AfterFunc(d, f)

	return &Timer{stop: t.Stop}
}
