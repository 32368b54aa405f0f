package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

// SnowRule is a host snow check, see World.CanSnowAt.
type SnowRule func(w World, pos cube.Pos, checkLight bool) bool

// Memory is a World that keeps all of its state in memory. Positions that were never set hold air, the
// default biome and no block light.
type Memory struct {
	rng          cube.Range
	defaultBiome Biome
	snowRule     SnowRule

	blocks map[protocol.ChunkPos]map[cube.Pos]world.Block
	biomes map[protocol.ChunkPos]map[[2]int]Biome
	light  map[cube.Pos]uint8

	deadlock.RWMutex
}

// NewMemory creates an empty Memory world with the vertical range and default biome passed. The host snow
// rule defaults to DefaultCanSnowAt.
func NewMemory(rng cube.Range, defaultBiome Biome) *Memory {
	return &Memory{
		rng:          rng,
		defaultBiome: defaultBiome,
		snowRule:     DefaultCanSnowAt,
		blocks:       make(map[protocol.ChunkPos]map[cube.Pos]world.Block),
		biomes:       make(map[protocol.ChunkPos]map[[2]int]Biome),
		light:        make(map[cube.Pos]uint8),
	}
}

// Block returns the block at the position passed.
func (m *Memory) Block(pos cube.Pos) world.Block {
	if pos.OutOfBounds(m.rng) {
		return block.Air{}
	}

	m.RLock()
	defer m.RUnlock()

	if b, ok := m.blocks[chunkPos(pos)][pos]; ok {
		return b
	}
	return block.Air{}
}

// SetBlock sets the block at the position passed. Positions outside the vertical range are ignored.
func (m *Memory) SetBlock(pos cube.Pos, b world.Block) {
	if pos.OutOfBounds(m.rng) {
		return
	}
	cp := chunkPos(pos)

	m.Lock()
	defer m.Unlock()

	if m.blocks[cp] == nil {
		m.blocks[cp] = make(map[cube.Pos]world.Block)
	}
	if b == nil || IsAir(b) {
		delete(m.blocks[cp], pos)
		return
	}
	m.blocks[cp][pos] = b
}

// Biome returns the biome of the column pos is in.
func (m *Memory) Biome(pos cube.Pos) Biome {
	m.RLock()
	defer m.RUnlock()

	if b, ok := m.biomes[chunkPos(pos)][[2]int{pos.X(), pos.Z()}]; ok {
		return b
	}
	return m.defaultBiome
}

// SetBiome sets the biome of the whole column pos is in.
func (m *Memory) SetBiome(pos cube.Pos, b Biome) {
	cp := chunkPos(pos)

	m.Lock()
	defer m.Unlock()

	if m.biomes[cp] == nil {
		m.biomes[cp] = make(map[[2]int]Biome)
	}
	m.biomes[cp][[2]int{pos.X(), pos.Z()}] = b
}

// BlockLight returns the block light at the position passed.
func (m *Memory) BlockLight(pos cube.Pos) uint8 {
	m.RLock()
	defer m.RUnlock()
	return m.light[pos]
}

// SetBlockLight sets the block light at the position passed. Levels above 15 are capped.
func (m *Memory) SetBlockLight(pos cube.Pos, level uint8) {
	m.Lock()
	defer m.Unlock()
	m.light[pos] = min(level, 15)
}

// Range returns the vertical range of the world.
func (m *Memory) Range() cube.Range {
	return m.rng
}

// CanSnowAt runs the snow rule of the world.
func (m *Memory) CanSnowAt(pos cube.Pos, checkLight bool) bool {
	m.RLock()
	rule := m.snowRule
	m.RUnlock()
	return rule(m, pos, checkLight)
}

// SetSnowRule replaces the snow rule of the world. Passing nil restores DefaultCanSnowAt.
func (m *Memory) SetSnowRule(rule SnowRule) {
	if rule == nil {
		rule = DefaultCanSnowAt
	}
	m.Lock()
	defer m.Unlock()
	m.snowRule = rule
}

// Chunks returns the amount of chunks that hold at least one block.
func (m *Memory) Chunks() int {
	m.RLock()
	defer m.RUnlock()

	var n int
	for _, blocks := range m.blocks {
		if len(blocks) > 0 {
			n++
		}
	}
	return n
}

// PurgeChunk removes all blocks, biomes and light of the chunk passed.
func (m *Memory) PurgeChunk(pos protocol.ChunkPos) {
	m.Lock()
	defer m.Unlock()

	delete(m.blocks, pos)
	delete(m.biomes, pos)
	for p := range m.light {
		if chunkPos(p) == pos {
			delete(m.light, p)
		}
	}
}

// chunkPos returns the position of the chunk the block position is in.
func chunkPos(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}
