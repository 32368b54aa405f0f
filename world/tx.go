package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Tx turns a dragonfly transaction into a World, so the season rules can run inside a dragonfly server.
type Tx struct {
	tx       *world.Tx
	snowRule SnowRule
}

// FromTx wraps the transaction passed. A nil rule uses DefaultCanSnowAt.
func FromTx(tx *world.Tx, rule SnowRule) Tx {
	if rule == nil {
		rule = DefaultCanSnowAt
	}
	return Tx{tx: tx, snowRule: rule}
}

// Block ...
func (t Tx) Block(pos cube.Pos) world.Block {
	return t.tx.Block(pos)
}

// SetBlock ...
func (t Tx) SetBlock(pos cube.Pos, b world.Block) {
	t.tx.SetBlock(pos, b, nil)
}

// Biome ...
func (t Tx) Biome(pos cube.Pos) Biome {
	return t.tx.Biome(pos)
}

// BlockLight approximates the block light at pos. Dragonfly only exposes the brightest of block and sky
// light, so the light only counts as block light when it is brighter than the sky light. In daylight this
// under-reports block light: a torch under the open sky reads as 0.
func (t Tx) BlockLight(pos cube.Pos) uint8 {
	if l := t.tx.Light(pos); l > t.tx.SkyLight(pos) {
		return l
	}
	return 0
}

// Range ...
func (t Tx) Range() cube.Range {
	return t.tx.Range()
}

// CanSnowAt ...
func (t Tx) CanSnowAt(pos cube.Pos, checkLight bool) bool {
	return t.snowRule(t, pos, checkLight)
}
