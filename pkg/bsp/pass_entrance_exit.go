package bsp

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// placeEntranceExitPass picks the entrance uniformly at random among
// room centers via the details stream, and the exit as the room center
// of maximum Manhattan distance from it (ties broken by ascending room
// ID). Anchoring both to room centers, rather than arbitrary floor
// cells, keeps them inside rooms under the partitioned strategy.
type placeEntranceExitPass struct {
	cfg Config
}

func (p placeEntranceExitPass) ID() string                       { return "placeEntranceExit" }
func (p placeEntranceExitPass) InputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p placeEntranceExitPass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeonState }
func (p placeEntranceExitPass) RequiredStreams() []rng.StreamName {
	return []rng.StreamName{rng.StreamDetails}
}

func (p placeEntranceExitPass) Run(ctx *pipeline.Context, input any) (any, error) {
	state := input.(*artifact.DungeonState)
	if len(state.Rooms) == 0 {
		return state, nil
	}

	details := ctx.Streams.Get(rng.StreamDetails)
	entranceRoom := state.Rooms[details.Range(0, len(state.Rooms)-1)]
	entrance := entranceRoom.Center()

	exitRoom := state.Rooms[0]
	bestDist := -1
	for _, r := range state.Rooms {
		c := r.Center()
		d := abs(c.X-entrance.X) + abs(c.Y-entrance.Y)
		if d > bestDist {
			bestDist = d
			exitRoom = r
		}
	}
	exit := exitRoom.Center()

	state.Spawns = append(state.Spawns,
		artifact.NewSpawnPoint(entrance, entranceRoom.ID, artifact.SpawnEntrance, []string{"spawn", "entrance"}, 1, 0),
		artifact.NewSpawnPoint(exit, exitRoom.ID, artifact.SpawnExit, []string{"exit"}, 1, bestDist),
	)

	return state, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
