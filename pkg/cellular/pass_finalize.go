package cellular

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// finalizePass snapshots the live grid into an immutable byte copy,
// computes the content checksum, and produces the terminal Dungeon
// artifact. Rooms, connections, and spawns pass through unchanged.
type finalizePass struct {
	cfg Config
}

func (p finalizePass) ID() string                       { return "finalize" }
func (p finalizePass) InputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p finalizePass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeon }
func (p finalizePass) RequiredStreams() []rng.StreamName { return nil }

func (p finalizePass) Run(ctx *pipeline.Context, input any) (any, error) {
	state := input.(*artifact.DungeonState)
	terrain := state.Grid.Bytes()

	checksum := artifact.ComputeChecksum(terrain, state.Rooms, state.Connections, state.Spawns)

	return &artifact.Dungeon{
		Width:       state.Width,
		Height:      state.Height,
		Terrain:     terrain,
		Rooms:       state.Rooms,
		Connections: state.Connections,
		Spawns:      state.Spawns,
		Checksum:    checksum,
	}, nil
}
