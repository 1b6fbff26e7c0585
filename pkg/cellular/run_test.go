package cellular

import (
	"testing"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/seed"
)

func mustSeed(t *testing.T, primary uint32) *seed.DungeonSeed {
	t.Helper()
	s, err := seed.GenerateSeeds(primary, seed.GenerateOptions{Timestamp: 1})
	if err != nil {
		t.Fatalf("GenerateSeeds: %v", err)
	}
	return s
}

func TestRunProducesSingleCavernWithEntranceAndExit(t *testing.T) {
	cfg := DefaultConfig(60, 40)
	d, err := Run(cfg, mustSeed(t, 12345), pipeline.NullSink{}, pipeline.NoCancel{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(d.Rooms) != 1 {
		t.Fatalf("expected exactly one cavern room, got %d", len(d.Rooms))
	}

	var entrances, exits int
	for _, sp := range d.Spawns {
		switch sp.Type {
		case "entrance":
			entrances++
		case "exit":
			exits++
		}
		idx := sp.Position.Y*d.Width + sp.Position.X
		if grid.CellKind(d.Terrain[idx]) != grid.Floor {
			t.Fatalf("spawn %+v not on floor", sp)
		}
	}
	if entrances != 1 {
		t.Fatalf("expected exactly one entrance, got %d", entrances)
	}
	if exits != 1 {
		t.Fatalf("expected exactly one exit, got %d", exits)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := DefaultConfig(60, 40)
	a, err := Run(cfg, mustSeed(t, 777), pipeline.NullSink{}, pipeline.NoCancel{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(cfg, mustSeed(t, 777), pipeline.NullSink{}, pipeline.NoCancel{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Checksum != b.Checksum {
		t.Fatalf("checksum mismatch across identical runs: %q vs %q", a.Checksum, b.Checksum)
	}
}

func TestRunConnectAllRegionsKeepsMultipleRoomsConnected(t *testing.T) {
	cfg := DefaultConfig(60, 40)
	cfg.ConnectAllRegions = true
	cfg.MinRegionSize = 10
	d, err := Run(cfg, mustSeed(t, 99), pipeline.NullSink{}, pipeline.NoCancel{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.Rooms) > 1 && len(d.Connections) == 0 {
		t.Fatalf("expected regions to be wired together, got %d rooms and no connections", len(d.Rooms))
	}
}
