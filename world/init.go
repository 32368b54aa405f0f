package world

import (
	_ "unsafe"
)

// noinspection ALL
//
//go:linkname world_finaliseBlockRegistry github.com/df-mc/dragonfly/server/world.finaliseBlockRegistry
func world_finaliseBlockRegistry()

func init() {
	// Blocks can only be placed in a dragonfly world once the registry is finalised. The server does this on
	// startup, but a Tx may be used without one.
	world_finaliseBlockRegistry()
}
