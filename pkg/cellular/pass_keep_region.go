package cellular

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/cavern"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/region"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// keptRegionsMetaKey stashes the surviving regions for connectRegions to
// consume, without widening the DungeonState shape itself.
const keptRegionsMetaKey = "cellular.keptRegions"

// keepLargestRegionPass extracts floor regions and keeps either only the
// largest (connectAllRegions=false) or every region at or above
// cfg.MinRegionSize (connectAllRegions=true), overwriting the rest with
// Wall and emitting one cavern Room per surviving region.
type keepLargestRegionPass struct {
	cfg Config
}

func (p keepLargestRegionPass) ID() string                       { return "keepLargestRegion" }
func (p keepLargestRegionPass) InputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p keepLargestRegionPass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeonState }
func (p keepLargestRegionPass) RequiredStreams() []rng.StreamName {
	return []rng.StreamName{rng.StreamRooms}
}

func (p keepLargestRegionPass) Run(ctx *pipeline.Context, input any) (any, error) {
	state := input.(*artifact.DungeonState)
	regions := region.FindRegionsBFS(state.Grid, grid.Floor, region.Options{Diagonal: false})

	var kept []region.Region
	if p.cfg.ConnectAllRegions {
		classes := cavern.Classify(regions)
		for _, c := range classes {
			if c.Region.Size >= p.cfg.MinRegionSize {
				kept = append(kept, c.Region)
			}
		}
	} else {
		if best, ok := cavern.Largest(regions); ok {
			kept = []region.Region{best}
		}
	}

	keptSet := make(map[int]bool, len(kept))
	for _, r := range kept {
		keptSet[r.ID] = true
	}
	for _, r := range regions {
		if keptSet[r.ID] {
			continue
		}
		for _, pt := range r.Points {
			state.Grid.SetUnchecked(pt.X, pt.Y, grid.Wall)
		}
	}

	roomsStream := ctx.Streams.Get(rng.StreamRooms)
	for _, r := range kept {
		w := r.Bounds.Width()
		h := r.Bounds.Height()
		room := artifact.NewRoom(len(state.Rooms), r.Bounds.MinX, r.Bounds.MinY, w, h,
			artifact.RoomCavern, uint32(roomsStream.Range(1, 1<<30)))
		state.Rooms = append(state.Rooms, room)
	}

	ctx.Meta[keptRegionsMetaKey] = kept

	ctx.Trace.Decision("keepLargestRegion", "regionsKept", nil,
		"", "overwrote sub-threshold regions with wall")

	return state, nil
}
