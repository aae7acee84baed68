package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func TestFakeNow(t *testing.T) {
	c := NewFake(epoch)

	assert.Equal(t, epoch, c.Now())

	c.Advance(90 * time.Second)

	assert.Equal(t, epoch.Add(90*time.Second), c.Now())
}

func TestFakeAfterFuncFiresAtDeadline(t *testing.T) {
	c := NewFake(epoch)

	var calls int

	c.AfterFunc(time.Minute, func() { calls++ })

	c.Advance(59 * time.Second)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, c.Pending())

	c.Advance(time.Hour)
	assert.Equal(t, 1, calls, "one-shot callbacks fire once")
}

func TestFakeStop(t *testing.T) {
	c := NewFake(epoch)

	var calls int

	timer := c.AfterFunc(time.Minute, func() { calls++ })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)

	assert.Equal(t, 0, calls)
}

func TestFakeStopAfterFire(t *testing.T) {
	c := NewFake(epoch)

	timer := c.AfterFunc(time.Second, func() {})

	c.Advance(time.Second)

	assert.False(t, timer.Stop())
}

func TestFakeCallbackCanReschedule(t *testing.T) {
	c := NewFake(epoch)

	var fired []time.Time

	var tick func()

	tick = func() {
		fired = append(fired, c.Now())
		if len(fired) < 3 {
			c.AfterFunc(time.Minute, tick)
		}
	}

	c.AfterFunc(time.Minute, tick)

	for range 3 {
		c.Advance(time.Minute)
	}

	assert.Equal(t, []time.Time{
		epoch.Add(time.Minute),
		epoch.Add(2 * time.Minute),
		epoch.Add(3 * time.Minute),
	}, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	c := NewFake(epoch)

	var order []string

	c.AfterFunc(3*time.Second, func() { order = append(order, "third") })
	c.AfterFunc(time.Second, func() { order = append(order, "first") })
	c.AfterFunc(2*time.Second, func() { order = append(order, "second") })

	c.Advance(5 * time.Second)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestNilTimerStop(t *testing.T) {
	var timer *Timer

	assert.False(t, timer.Stop())
}
