package cellular

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// placeEntranceExitPass collects every floor cell, draws a uniformly
// random entrance from the details stream, and picks the floor cell
// maximizing Manhattan distance to the entrance (ties broken by row-major
// order) as the exit.
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

	var floors []grid.Point
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			if state.Grid.GetUnchecked(x, y) == grid.Floor {
				floors = append(floors, grid.Point{X: x, Y: y})
			}
		}
	}
	if len(floors) == 0 {
		return state, nil
	}

	details := ctx.Streams.Get(rng.StreamDetails)
	entrance := floors[details.Range(0, len(floors)-1)]

	exit := floors[0]
	bestDist := -1
	for _, f := range floors {
		d := abs(f.X-entrance.X) + abs(f.Y-entrance.Y)
		if d > bestDist {
			bestDist = d
			exit = f
		}
	}

	entranceRoom := roomContaining(state.Rooms, entrance)
	exitRoom := roomContaining(state.Rooms, exit)

	state.Spawns = append(state.Spawns,
		artifact.NewSpawnPoint(entrance, entranceRoom, artifact.SpawnEntrance, []string{"spawn", "entrance"}, 1, 0),
		artifact.NewSpawnPoint(exit, exitRoom, artifact.SpawnExit, []string{"exit"}, 1, bestDist),
	)

	return state, nil
}

func roomContaining(rooms []artifact.Room, p grid.Point) int {
	for _, r := range rooms {
		if r.Bounds().Contains(p.X, p.Y) {
			return r.ID
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
