package climate

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/settings"
	"github.com/oomph-ac/seasons/world"
)

// FloatTemperature returns the temperature of b at pos during season s. In winter, every biome that is not
// warmer than season.WinterSnowTemperature freezes over completely.
func FloatTemperature(b world.Biome, pos cube.Pos, s season.Season, g settings.Gameplay) float64 {
	if g.EnableSeasons && s == season.Winter && b.Temperature() <= season.WinterSnowTemperature {
		return 0
	}
	return world.Temperature(b, pos)
}
