package bsp

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// placeRoomsPass carves one rectangular room per partition leaf, sized
// within [MinRoomSize, MaxRoomSize] and clamped to its leaf, positioned
// uniformly within the leaf's remaining slack. Leaves are disjoint by
// construction, so rooms never overlap. Uses only the rooms stream.
type placeRoomsPass struct {
	cfg Config
}

func (p placeRoomsPass) ID() string                       { return "placeRooms" }
func (p placeRoomsPass) InputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p placeRoomsPass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeonState }
func (p placeRoomsPass) RequiredStreams() []rng.StreamName {
	return []rng.StreamName{rng.StreamRooms}
}

func (p placeRoomsPass) Run(ctx *pipeline.Context, input any) (any, error) {
	state := input.(*artifact.DungeonState)
	leaves, _ := ctx.Meta[leavesMetaKey].([]grid.Bounds)

	roomsStream := ctx.Streams.Get(rng.StreamRooms)

	for _, leaf := range leaves {
		maxW := min(p.cfg.MaxRoomSize, leaf.Width())
		maxH := min(p.cfg.MaxRoomSize, leaf.Height())
		minW := min(p.cfg.MinRoomSize, maxW)
		minH := min(p.cfg.MinRoomSize, maxH)

		w := roomsStream.IntRange(minW, maxW)
		h := roomsStream.IntRange(minH, maxH)
		x := leaf.MinX + roomsStream.Range(0, leaf.Width()-w)
		y := leaf.MinY + roomsStream.Range(0, leaf.Height()-h)

		state.Grid.FillRect(grid.BoundsFromRect(x, y, w, h), grid.Floor)

		room := artifact.NewRoom(len(state.Rooms), x, y, w, h,
			artifact.RoomStandard, uint32(roomsStream.Range(1, 1<<30)))
		state.Rooms = append(state.Rooms, room)
	}

	return state, nil
}
