package crop

import (
	"io"

	"github.com/df-mc/dragonfly/server/block/cube"
	df "github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/settings"
	"github.com/oomph-ac/seasons/world"
	"github.com/sirupsen/logrus"
)

const (
	// ClimatisedTemperature is the temperature a crop must be kept at to survive winter.
	ClimatisedTemperature = 1

	// DefaultMinLiving and DefaultMaxLiving bound the living temperature of Decayable crops that have no
	// configured range.
	DefaultMinLiving = 5
	DefaultMaxLiving = 20
)

// Decayable is implemented by crops that wither in the cold.
type Decayable interface {
	// ShouldDecay returns true if the crop is currently able to wither.
	ShouldDecay() bool
}

// TemperatureField provides the temperature at positions in the world.
type TemperatureField interface {
	// TargetTemperatureAt returns the temperature the position is moving towards.
	TargetTemperatureAt(w world.World, pos cube.Pos) int
	// Climatised reports whether the position is kept at or above the minimum temperature passed, for
	// example by a nearby heat source.
	Climatised(w world.World, pos cube.Pos, min int) bool
}

// Handler decides when crops wither.
type Handler struct {
	log      logrus.FieldLogger
	gameplay settings.Gameplay
	crops    settings.CropTable
	seasons  season.Provider
	field    TemperatureField
}

// NewHandler creates a Handler for the settings passed. A nil logger discards all output.
func NewHandler(log logrus.FieldLogger, s settings.Settings, seasons season.Provider, field TemperatureField) *Handler {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Handler{
		log:      log,
		gameplay: s.Gameplay,
		crops:    s.CropTable(),
		seasons:  seasons,
		field:    field,
	}
}

// OnUpdateTick is called for every random tick a crop at pos receives. Depending on the settings, the crop
// withers either when winter hits it unprotected or when the temperature leaves its living range.
func (h *Handler) OnUpdateTick(b df.Block, w world.World, pos cube.Pos) {
	if h.gameplay.TemperatureWithering {
		h.witherByTemperature(b, w, pos)
		return
	}
	h.witherBySeason(b, w, pos)
}

// witherBySeason kills the crop if it decays and is left unprotected in winter.
func (h *Handler) witherBySeason(b df.Block, w world.World, pos cube.Pos) {
	if h.seasons.Time().Season() != season.Winter {
		return
	}
	if h.field.Climatised(w, pos, ClimatisedTemperature) || !h.gameplay.EnableSeasons {
		return
	}

	name := world.BlockName(b)
	if d, ok := b.(Decayable); ok && d.ShouldDecay() {
		h.kill(w, pos, name, "winter")
	} else if _, ok := h.crops.Lookup(name); ok {
		h.kill(w, pos, name, "winter")
	}
}

// witherByTemperature kills the crop if the temperature at its position lies outside its living range.
func (h *Handler) witherByTemperature(b df.Block, w world.World, pos cube.Pos) {
	name := world.BlockName(b)

	minLiving, maxLiving, ok := h.livingRange(b, name)
	if !ok {
		return
	}
	temp := h.field.TargetTemperatureAt(w, pos)
	if temp < minLiving {
		h.kill(w, pos, name, "too cold")
	} else if temp > maxLiving {
		h.kill(w, pos, name, "too hot")
	}
}

// livingRange returns the living temperature range of the block. Configured ranges take precedence over
// the defaults of Decayable crops. If the block is neither, ok is false.
func (h *Handler) livingRange(b df.Block, name string) (minLiving, maxLiving int, ok bool) {
	if c, found := h.crops.Lookup(name); found {
		return c.MinLiving, c.MaxLiving, true
	}
	if d, decays := b.(Decayable); decays && d.ShouldDecay() {
		return DefaultMinLiving, DefaultMaxLiving, true
	}
	return 0, 0, false
}

func (h *Handler) kill(w world.World, pos cube.Pos, name, reason string) {
	w.SetBlock(pos, world.DeadCrop())
	h.log.WithFields(logrus.Fields{"pos": pos, "block": name, "reason": reason}).Debug("crop withered")
}
