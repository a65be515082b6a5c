package game

import (
	"time"
)

// Clock measures game time: wall time since Reset minus any time spent paused.
// It feeds the logical now passed to Session.Tick.
type Clock struct {
	now func() time.Time

	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewClock creates a clock reading wall time.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading from now, for tests.
func NewClockWithSource(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset restarts game time at zero, running.
func (c *Clock) Reset() {
	c.start = c.now()
	c.paused = false
	c.pauseStart = time.Time{}
	c.totalPaused = 0
}

// Now returns elapsed game time, frozen while paused.
func (c *Clock) Now() time.Duration {
	if c.paused {
		return c.pauseStart.Sub(c.start) - c.totalPaused
	}
	return c.now().Sub(c.start) - c.totalPaused
}

func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.now()
}

func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.totalPaused += c.now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

func (c *Clock) IsPaused() bool {
	return c.paused
}
