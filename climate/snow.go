package climate

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/settings"
	"github.com/oomph-ac/seasons/world"
)

// CanSnowAt reports whether snow may form at pos during season s. If checkLight is true, pos must also be a
// dark air block a snow layer can rest in.
func CanSnowAt(w world.World, pos cube.Pos, checkLight bool, s season.Season, g settings.Gameplay) bool {
	if !winterAllowed(w, pos, s, g) {
		return false
	}
	if !checkLight {
		return true
	}
	return dark(w, pos) && world.IsAir(w.Block(pos)) && world.CanPlaceSnowLayer(w, pos)
}
