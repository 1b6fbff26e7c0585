package artifact

import (
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/seed"
)

// DungeonState is the mutable workbench every generation pass reads from
// and writes back: the live terrain grid plus the rooms/connections/spawns
// accumulated so far.
type DungeonState struct {
	Width, Height int
	Grid          *grid.Grid
	Rooms         []Room
	Connections   []Connection
	Spawns        []SpawnPoint
}

// Dungeon is the terminal, immutable artifact a pipeline run produces:
// terrain has been snapshotted into its own byte copy and a checksum has
// been computed over the dungeon's semantic content.
type Dungeon struct {
	Width, Height int
	Terrain       []byte
	Rooms         []Room
	Connections   []Connection
	Spawns        []SpawnPoint
	Checksum      string
	Seed          *seed.DungeonSeed
}
