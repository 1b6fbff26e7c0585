package bsp

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
	"github.com/aldenfall/dungeonkernel/pkg/seed"
)

// buildRunner assembles the fixed five-stage partitioning pass chain.
func buildRunner(cfg Config) (*pipeline.Runner, error) {
	return pipeline.NewRunner(
		partitionPass{cfg},
		placeRoomsPass{cfg},
		connectRoomsPass{cfg},
		placeEntranceExitPass{cfg},
		finalizePass{cfg},
	)
}

// Run executes the space-partition strategy end to end: it derives the
// four RNG streams from s, threads an empty start artifact through the
// pass chain, and stamps the seed record onto the resulting Dungeon.
// progress may be nil; trace and cancel may also be nil.
func Run(cfg Config, s *seed.DungeonSeed, trace pipeline.TraceSink, cancel pipeline.CancelToken, progress pipeline.ProgressSink) (*artifact.Dungeon, error) {
	runner, err := buildRunner(cfg)
	if err != nil {
		return nil, err
	}

	streams := rng.NewStreams(s.Layout, s.Rooms, s.Connections, s.Details)
	ctx := pipeline.NewContext(streams, trace, cancel, progress)

	out, err := runner.Run(ctx, nil)
	if err != nil {
		return nil, err
	}

	dungeon := out.(*artifact.Dungeon)
	dungeon.Seed = s
	return dungeon, nil
}
