// Package climate implements the season-aware versions of the host's snow, ice, rain and temperature rules.
// Every function takes the season to evaluate explicitly, along with the gameplay settings in effect.
package climate

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/settings"
	"github.com/oomph-ac/seasons/world"
)

// winterAllowed runs the checks shared by snow and ice: the biome at pos must be cold enough for season s
// and must not be a river or ocean.
func winterAllowed(w world.World, pos cube.Pos, s season.Season, g settings.Gameplay) bool {
	b := w.Biome(pos)
	if !season.CanSnowAtTemp(s, world.Temperature(b, pos), g.EnableSeasons) {
		return false
	}
	return !world.IsWaterBody(b)
}

// dark reports whether pos lies within the world and is dark enough for snow or ice to form.
func dark(w world.World, pos cube.Pos) bool {
	return world.InRange(w, pos) && w.BlockLight(pos) < world.MaxSnowLight
}
