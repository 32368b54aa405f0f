package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world/biome"
)

// Biome is the part of a biome the season rules need. Every dragonfly biome implements it.
type Biome interface {
	// Temperature returns the nominal temperature of the biome.
	Temperature() float64
	// Rainfall returns the amount of rain in the biome. Biomes with no rainfall never see rain.
	Rainfall() float64
	String() string
}

// SnowBiome is a Biome that decides itself whether it is a snowy biome.
type SnowBiome interface {
	Biome
	EnableSnow() bool
}

// RainBiome is a Biome that decides itself whether rain can fall in it.
type RainBiome interface {
	Biome
	CanRain() bool
}

const (
	seaLevel = 64
	// tempDrop is the temperature lost for every block above sea level.
	tempDrop = 1.0 / 600
)

// EnableSnow reports whether b is a snowy biome.
func EnableSnow(b Biome) bool {
	if s, ok := b.(SnowBiome); ok {
		return s.EnableSnow()
	}
	return b.Temperature() < 0.15
}

// CanRain reports whether rain can fall in b at all. Snowy biomes never see rain.
func CanRain(b Biome) bool {
	if r, ok := b.(RainBiome); ok {
		return r.CanRain()
	}
	return !EnableSnow(b) && b.Rainfall() > 0
}

// IsWaterBody reports whether b is exactly biome.River, biome.Ocean or biome.DeepOcean. Snow and ice never
// form in these. Other water biomes, such as frozen rivers or cold oceans, are not water bodies here.
func IsWaterBody(b Biome) bool {
	switch b.(type) {
	case biome.River, biome.Ocean, biome.DeepOcean:
		return true
	}
	return false
}

// Temperature returns the temperature of b at pos. Higher altitudes are colder.
func Temperature(b Biome, pos cube.Pos) float64 {
	diff := pos.Y() - seaLevel
	if diff < 0 {
		diff = 0
	}
	return b.Temperature() - float64(diff)*tempDrop
}
