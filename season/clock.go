package season

import (
	"sync/atomic"

	"github.com/oomph-ac/seasons/assert"
)

// Provider provides the current point in the season cycle.
type Provider interface {
	Time() Time
}

// Clock counts the ticks elapsed in the current season cycle. The counter wraps around once a full cycle has
// passed. A Clock may be read from several goroutines, but only one should advance it.
type Clock struct {
	cycle Cycle
	ticks atomic.Int64
}

// NewClock creates a Clock positioned at the start of the sub-season passed.
func NewClock(cycle Cycle, start SubSeason) *Clock {
	assert.IsTrue(cycle.DayTicks > 0, "day ticks must be positive, got %v", cycle.DayTicks)
	assert.IsTrue(cycle.SubSeasonDays > 0, "sub-season days must be positive, got %v", cycle.SubSeasonDays)

	c := &Clock{cycle: cycle}
	c.ticks.Store(cycle.Start(start))
	return c
}

// Tick advances the clock by a single tick and returns the new tick count.
func (c *Clock) Tick() int64 {
	next := (c.ticks.Load() + 1) % c.cycle.Ticks()
	c.ticks.Store(next)
	return next
}

// Set moves the clock to the tick passed, wrapped into the cycle.
func (c *Clock) Set(ticks int64) {
	ticks %= c.cycle.Ticks()
	if ticks < 0 {
		ticks += c.cycle.Ticks()
	}
	c.ticks.Store(ticks)
}

// Ticks returns the ticks elapsed in the current cycle.
func (c *Clock) Ticks() int64 {
	return c.ticks.Load()
}

// Cycle returns the cycle the clock runs through.
func (c *Clock) Cycle() Cycle {
	return c.cycle
}

// Time returns the current point in the cycle.
func (c *Clock) Time() Time {
	return Time{Ticks: c.ticks.Load(), Cycle: c.cycle}
}
