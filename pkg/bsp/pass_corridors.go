package bsp

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pathfind"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// connectRoomsPass wires every room into a single connected graph: a
// minimum spanning tree over room centers plus a handful of redundant
// edges, routed through walls at cfg.Pathfinding.TunnelWallCost and
// carved to cfg.CorridorWidth. CreateConnections is a pure function of
// the room layout, so this pass declares and draws from no stream.
type connectRoomsPass struct {
	cfg Config
}

func (p connectRoomsPass) ID() string                       { return "connectRooms" }
func (p connectRoomsPass) InputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p connectRoomsPass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeonState }
func (p connectRoomsPass) RequiredStreams() []rng.StreamName { return nil }

func (p connectRoomsPass) Run(ctx *pipeline.Context, input any) (any, error) {
	state := input.(*artifact.DungeonState)

	if len(state.Rooms) < 2 {
		return state, nil
	}

	centers := make([]pathfind.RoomCenter, len(state.Rooms))
	for i, r := range state.Rooms {
		centers[i] = pathfind.RoomCenter{ID: r.ID, Center: r.Center()}
	}

	edges := pathfind.CreateConnections(centers, state.Grid, p.cfg.Pathfinding)
	for _, e := range edges {
		carveCorridor(state.Grid, e.Path, p.cfg.CorridorWidth)
		state.Connections = append(state.Connections, artifact.NewConnection(e.FromID, e.ToID, e.Path))
	}

	return state, nil
}

// carveCorridor writes Floor along path, widened by radius cells on
// every side of each centerline point.
func carveCorridor(g *grid.Grid, path []grid.Point, width int) {
	radius := (width - 1) / 2
	for _, pt := range path {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				g.Set(pt.X+dx, pt.Y+dy, grid.Floor)
			}
		}
	}
}
