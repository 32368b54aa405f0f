package season

// Cycle describes the length of a season cycle.
type Cycle struct {
	// DayTicks is the amount of ticks in a single day.
	DayTicks int64
	// SubSeasonDays is the amount of days a single sub-season lasts.
	SubSeasonDays int64
}

// DefaultCycle returns the default cycle: 24000 tick days, 5 days per sub-season.
func DefaultCycle() Cycle {
	return Cycle{DayTicks: 24000, SubSeasonDays: 5}
}

// SubSeasonTicks returns the amount of ticks a sub-season lasts.
func (c Cycle) SubSeasonTicks() int64 {
	return c.DayTicks * c.SubSeasonDays
}

// Ticks returns the amount of ticks of a full cycle through all sub-seasons.
func (c Cycle) Ticks() int64 {
	return c.SubSeasonTicks() * subSeasonCount
}

// Start returns the tick offset at which the sub-season passed begins.
func (c Cycle) Start(s SubSeason) int64 {
	return int64(s%subSeasonCount) * c.SubSeasonTicks()
}

// Time is a point in a season cycle.
type Time struct {
	Ticks int64
	Cycle Cycle
}

// Day returns the day of the cycle the time falls on.
func (t Time) Day() int64 {
	return t.Ticks / t.Cycle.DayTicks
}

// SubSeason returns the sub-season the time falls in.
func (t Time) SubSeason() SubSeason {
	return SubSeason((t.Ticks / t.Cycle.SubSeasonTicks()) % subSeasonCount)
}

// Season returns the coarse season the time falls in.
func (t Time) Season() Season {
	return t.SubSeason().Season()
}
