package bsp

import (
	"strconv"

	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// leavesMetaKey stashes the partition's leaf rectangles for placeRooms
// to consume, mirroring pkg/cellular's keptRegionsMetaKey pattern.
const leavesMetaKey = "bsp.leaves"

// partitionPass recursively splits the grid interior into leaf
// rectangles and starts the state as an all-Wall grid. Uses only the
// layout stream.
type partitionPass struct {
	cfg Config
}

func (p partitionPass) ID() string                       { return "partition" }
func (p partitionPass) InputType() pipeline.ArtifactKind  { return pipeline.KindEmpty }
func (p partitionPass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeonState }
func (p partitionPass) RequiredStreams() []rng.StreamName {
	return []rng.StreamName{rng.StreamLayout}
}

func (p partitionPass) Run(ctx *pipeline.Context, _ any) (any, error) {
	layout := ctx.Streams.Get(rng.StreamLayout)
	leaves := partitionLeaves(layout, p.cfg.Width, p.cfg.Height, p.cfg.RoomCount, p.cfg.MinPartitionSize)

	ctx.Meta[leavesMetaKey] = leaves
	ctx.Trace.Decision("partition", "leafCount", nil, strconv.Itoa(len(leaves)),
		"recursive binary split stopped: target reached or no leaf large enough to split")

	g := grid.New(p.cfg.Width, p.cfg.Height, grid.Wall)

	return &artifact.DungeonState{
		Width:  p.cfg.Width,
		Height: p.cfg.Height,
		Grid:   g,
	}, nil
}
