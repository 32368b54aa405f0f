// Package seasons applies a cycle of seasons to a voxel world. A Seasons value owns the season clock and the
// settings in effect, and exposes the season-aware snow, ice, rain, temperature and crop rules bound to the
// current season.
package seasons

import (
	"io"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/block/cube"
	df "github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/seasons/climate"
	"github.com/oomph-ac/seasons/crop"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/settings"
	"github.com/oomph-ac/seasons/world"
	"github.com/sirupsen/logrus"
)

// Seasons represents a running season cycle.
type Seasons struct {
	log   logrus.FieldLogger
	clock *season.Clock
	field crop.TemperatureField

	state atomic.Pointer[state]
}

// state is a snapshot of the settings and everything built from them.
type state struct {
	settings settings.Settings
	crops    *crop.Handler
}

// New returns a new Seasons instance starting at the beginning of the configured sub-season. The settings
// passed are validated first. The temperature field is used to decide when crops wither.
func New(log logrus.FieldLogger, s settings.Settings, field crop.TemperatureField) (*Seasons, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	sea := &Seasons{
		log:   log,
		clock: season.NewClock(s.Cycle.Season(), s.Cycle.Start()),
		field: field,
	}
	sea.state.Store(sea.newState(s))
	return sea, nil
}

// Reload replaces the settings in effect. The clock keeps its position, so the cycle length should not be
// changed while the world is running.
func (s *Seasons) Reload(set settings.Settings) error {
	if err := set.Validate(); err != nil {
		return err
	}
	if set.Cycle.Season() != s.clock.Cycle() {
		s.log.Warn("season cycle length changed, restart to apply it")
	}
	s.state.Store(s.newState(set))
	s.log.WithField("enable_seasons", set.Gameplay.EnableSeasons).Info("reloaded season settings")
	return nil
}

func (s *Seasons) newState(set settings.Settings) *state {
	return &state{settings: set, crops: crop.NewHandler(s.log, set, s.clock, s.field)}
}

// Settings returns the settings currently in effect.
func (s *Seasons) Settings() settings.Settings {
	return s.state.Load().settings
}

// Clock returns the season clock.
func (s *Seasons) Clock() *season.Clock {
	return s.clock
}

// Season returns the current season.
func (s *Seasons) Season() season.Season {
	return s.clock.Time().Season()
}

// Tick advances the season clock by a single tick. It should be called once for every tick of the world.
func (s *Seasons) Tick() {
	before := s.clock.Time().SubSeason()
	s.clock.Tick()
	if after := s.clock.Time().SubSeason(); after != before {
		s.log.WithFields(logrus.Fields{"from": before, "to": after}).Info("sub-season changed")
	}
}

// CanSnowAt reports whether snow may form at pos in the current season.
func (s *Seasons) CanSnowAt(w world.World, pos cube.Pos, checkLight bool) bool {
	return climate.CanSnowAt(w, pos, checkLight, s.Season(), s.gameplay())
}

// CanFreezeAt reports whether the water at pos may freeze in the current season.
func (s *Seasons) CanFreezeAt(w world.World, pos cube.Pos, ignoreIfSurroundedByWater bool) bool {
	return climate.CanFreezeAt(w, pos, ignoreIfSurroundedByWater, s.Season(), s.gameplay())
}

// RainingAt reports whether rain falls at pos in the current season. The world's snow check is replaced by
// the season-aware one.
func (s *Seasons) RainingAt(w world.World, pos cube.Pos) bool {
	return climate.RainingAt(s.Bind(w), pos, s.Season())
}

// FloatTemperature returns the temperature of b at pos in the current season.
func (s *Seasons) FloatTemperature(b world.Biome, pos cube.Pos) float64 {
	return climate.FloatTemperature(b, pos, s.Season(), s.gameplay())
}

// OnCropTick should be called for every random tick a crop receives. It may replace the crop with a dead crop.
func (s *Seasons) OnCropTick(b df.Block, w world.World, pos cube.Pos) {
	s.state.Load().crops.OnUpdateTick(b, w, pos)
}

// Bind returns w with its snow check replaced by CanSnowAt.
func (s *Seasons) Bind(w world.World) world.World {
	if b, ok := w.(bound); ok && b.s == s {
		return b
	}
	return bound{World: w, s: s}
}

func (s *Seasons) gameplay() settings.Gameplay {
	return s.state.Load().settings.Gameplay
}

// bound is a world.World whose snow check follows the seasons.
type bound struct {
	world.World
	s *Seasons
}

// CanSnowAt ...
func (b bound) CanSnowAt(pos cube.Pos, checkLight bool) bool {
	return b.s.CanSnowAt(b.World, pos, checkLight)
}
