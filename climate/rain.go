package climate

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/world"
)

// RainingAt reports whether rain, rather than snow, falls at pos during season s. Snowy biomes stay dry
// outside winter, and positions where the world lets snow form never see rain.
func RainingAt(w world.World, pos cube.Pos, s season.Season) bool {
	b := w.Biome(pos)
	if world.EnableSnow(b) && s != season.Winter {
		return false
	}
	if w.CanSnowAt(pos, false) {
		return false
	}
	return world.CanRain(b)
}
