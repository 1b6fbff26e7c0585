package dungeon

import (
	"context"
	"fmt"

	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/bsp"
	"github.com/aldenfall/dungeonkernel/pkg/cellular"
	"github.com/aldenfall/dungeonkernel/pkg/dungeonerr"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/seed"
)

// Generate validates cfg, derives the four RNG stream seeds from
// primary, and dispatches to the configured strategy. It checks ctx for
// cancellation before dispatch; cancellation during generation itself is
// checked by the underlying pipeline runner between passes.
func Generate(ctx context.Context, cfg *DungeonConfig, primary uint32) (*artifact.Dungeon, error) {
	return generate(ctx, cfg, primary, nil)
}

// GenerateProgress behaves like Generate but additionally reports coarse
// percent-complete progress at pass boundaries via onProgress.
func GenerateProgress(ctx context.Context, cfg *DungeonConfig, primary uint32, onProgress func(percent int)) (*artifact.Dungeon, error) {
	return generate(ctx, cfg, primary, onProgress)
}

func generate(ctx context.Context, cfg *DungeonConfig, primary uint32, onProgress func(percent int)) (*artifact.Dungeon, error) {
	if cfg == nil {
		return nil, dungeonerr.New(dungeonerr.ConfigInvalid, "config must not be nil", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, dungeonerr.Wrap(dungeonerr.GenerationCancelled, "cancelled before seed derivation", ctx.Err())
	default:
	}

	s, err := seed.GenerateSeeds(primary, seed.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("deriving stream seeds: %w", err)
	}

	cancel := &ctxCancelToken{ctx: ctx}
	var progress pipeline.ProgressSink
	if onProgress != nil {
		progress = progressFunc(onProgress)
	}
	trace := pipeline.NullSink{}

	switch cfg.Algorithm {
	case AlgorithmCellular:
		d, err := cellular.Run(buildCellularConfig(cfg), s, trace, cancel, progress)
		if err != nil {
			return nil, fmt.Errorf("cellular generation: %w", err)
		}
		return d, nil
	case AlgorithmBSP:
		d, err := bsp.Run(buildBSPConfig(cfg), s, trace, cancel, progress)
		if err != nil {
			return nil, fmt.Errorf("bsp generation: %w", err)
		}
		return d, nil
	default:
		return nil, dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("algorithm %q not recognized", cfg.Algorithm), nil)
	}
}

func buildCellularConfig(cfg *DungeonConfig) cellular.Config {
	return cellular.Config{
		Width:             cfg.Width,
		Height:            cfg.Height,
		InitialFillRatio:  cfg.Cellular.InitialFillRatio,
		Iterations:        cfg.Cellular.Iterations,
		BirthLimit:        cfg.Cellular.BirthLimit,
		DeathLimit:        cfg.Cellular.DeathLimit,
		MinRegionSize:     cfg.Cellular.MinRegionSize,
		ConnectAllRegions: cfg.Cellular.ConnectAllRegions,
		Pathfinding:       cfg.Pathfinding.toPathfindConfig(),
	}
}

func buildBSPConfig(cfg *DungeonConfig) bsp.Config {
	return bsp.Config{
		Width:            cfg.Width,
		Height:           cfg.Height,
		RoomCount:        cfg.RoomCount,
		MinRoomSize:      cfg.RoomSizeRange[0],
		MaxRoomSize:      cfg.RoomSizeRange[1],
		MinPartitionSize: cfg.BSP.MinPartitionSize,
		CorridorWidth:    cfg.BSP.CorridorWidth,
		Pathfinding:      cfg.Pathfinding.toPathfindConfig(),
	}
}

// ctxCancelToken adapts a context.Context to pipeline.CancelToken so the
// runner's between-pass cancellation checks observe ctx cancellation.
type ctxCancelToken struct {
	ctx context.Context
}

func (c *ctxCancelToken) IsCancelled() bool {
	return c.ctx.Err() != nil
}

// progressFunc adapts a plain percent callback to pipeline.ProgressSink.
type progressFunc func(percent int)

func (f progressFunc) Report(percent int) { f(percent) }
