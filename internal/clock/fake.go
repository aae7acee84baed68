package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a Clock that only moves when Advance is called. Callbacks run
// synchronously inside Advance, in deadline order, without any Fake lock
// held, so they may schedule further callbacks.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	pending []*fakeTimer
}

type fakeTimer struct {
	deadline time.Time
	f        func()
	done     bool
}

// NewFake returns a Fake clock set to start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *Fake) AfterFunc(d time.Duration, f func()) *Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	ft := &fakeTimer{
		deadline: c.now.Add(d),
		f:        f,
	}

	c.pending = append(c.pending, ft)

	return &Timer{
		stop: func() bool {
			c.mu.Lock()
			defer c.mu.Unlock()

			if ft.done {
				return false
			}

			ft.done = true

			return true
		},
	}
}

// Advance moves the clock forward by d and runs every callback whose
// deadline has been reached. Callbacks scheduled by those callbacks are run
// too if they fall within the new time.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	target := c.now
	c.mu.Unlock()

	for {
		due := c.collect(target)
		if len(due) == 0 {
			return
		}

		for _, ft := range due {
			ft.f()
		}
	}
}

// Pending returns the number of callbacks that are scheduled and not
// stopped.
func (c *Fake) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int

	for _, ft := range c.pending {
		if !ft.done {
			n++
		}
	}

	return n
}

// collect removes and returns the callbacks due at target, marking them
// done so that a late Stop reports false.
func (c *Fake) collect(target time.Time) []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due, remaining []*fakeTimer

	for _, ft := range c.pending {
		switch {
		case ft.done:
		case !ft.deadline.After(target):
			ft.done = true
			due = append(due, ft)
		default:
			remaining = append(remaining, ft)
		}
	}

	c.pending = remaining

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})

	return due
}
