package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// sourceDepth is the depth dragonfly gives water that is not spreading from elsewhere.
const sourceDepth = 8

// BlockName returns the name a block is registered under, such as minecraft:wheat.
func BlockName(b world.Block) string {
	n, _ := b.EncodeBlock()
	return n
}

// DeadCrop returns the block a withered crop is replaced with.
func DeadCrop() world.Block {
	return block.DeadBush{}
}

// IsAir returns true if the block is air.
func IsAir(b world.Block) bool {
	_, ok := b.(block.Air)
	return ok
}

// IsWater returns true if the block is water of any depth.
func IsWater(b world.Block) bool {
	_, ok := b.(block.Water)
	return ok
}

// IsSourceWater returns true if the block is a full water block, still or flowing.
func IsSourceWater(b world.Block) bool {
	w, ok := b.(block.Water)
	return ok && w.Depth == sourceDepth && !w.Falling
}

// CanPlaceSnowLayer reports whether a snow layer could rest at pos.
func CanPlaceSnowLayer(src world.BlockSource, pos cube.Pos) bool {
	belowPos := pos.Side(cube.FaceDown)
	below := src.Block(belowPos)
	switch BlockName(below) {
	case "minecraft:ice", "minecraft:packed_ice", "minecraft:barrier":
		return false
	}
	if _, ok := below.(block.Leaves); ok {
		return true
	}
	return below.Model().FaceSolid(belowPos, cube.FaceUp, src)
}
