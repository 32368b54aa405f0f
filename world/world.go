package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// MaxSnowLight is the block light level from which snow and ice melt away rather than form.
const MaxSnowLight = 10

// World is the part of a host world the season rules read from and write to. Implementations are expected to
// be used from the goroutine that runs the host's block updates only.
type World interface {
	// Block returns the block at the position passed.
	Block(pos cube.Pos) world.Block
	// SetBlock replaces the block at the position passed.
	SetBlock(pos cube.Pos, b world.Block)
	// Biome returns the biome at the position passed.
	Biome(pos cube.Pos) Biome
	// BlockLight returns the light emitted into the position by blocks, ignoring the sky.
	BlockLight(pos cube.Pos) uint8
	// Range returns the inclusive vertical range of the world.
	Range() cube.Range
	// CanSnowAt reports whether the host lets snow form at the position. If checkLight is true, the position
	// must also be dark and able to hold a snow layer.
	CanSnowAt(pos cube.Pos, checkLight bool) bool
}

// InRange reports whether the height of pos falls inside the vertical range of w.
func InRange(w World, pos cube.Pos) bool {
	r := w.Range()
	return pos.Y() >= r.Min() && pos.Y() <= r.Max()
}

// DefaultCanSnowAt is the host's own snow rule, which knows nothing of seasons: snow forms wherever the
// biome is colder than 0.15.
func DefaultCanSnowAt(w World, pos cube.Pos, checkLight bool) bool {
	if Temperature(w.Biome(pos), pos) >= 0.15 {
		return false
	}
	if !checkLight {
		return true
	}
	return InRange(w, pos) && w.BlockLight(pos) < MaxSnowLight && IsAir(w.Block(pos)) && CanPlaceSnowLayer(w, pos)
}
