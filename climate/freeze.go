package climate

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/seasons/season"
	"github.com/oomph-ac/seasons/settings"
	"github.com/oomph-ac/seasons/world"
)

var cardinalFaces = [...]cube.Face{cube.FaceWest, cube.FaceEast, cube.FaceNorth, cube.FaceSouth}

// CanFreezeAt reports whether the water at pos may turn into ice during season s. Only full water blocks
// freeze. If ignoreIfSurroundedByWater is true, water with water on all four horizontal sides stays liquid,
// so that only the edges of a body of water freeze over.
func CanFreezeAt(w world.World, pos cube.Pos, ignoreIfSurroundedByWater bool, s season.Season, g settings.Gameplay) bool {
	if !winterAllowed(w, pos, s, g) || !dark(w, pos) {
		return false
	}
	if !world.IsSourceWater(w.Block(pos)) {
		return false
	}
	if !ignoreIfSurroundedByWater {
		return true
	}
	for _, face := range cardinalFaces {
		if !world.IsWater(w.Block(pos.Side(face))) {
			return true
		}
	}
	return false
}
