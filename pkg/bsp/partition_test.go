package bsp

import (
	"testing"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

func TestPartitionLeavesAreDisjointAndWithinBounds(t *testing.T) {
	r := rng.New(42)
	leaves := partitionLeaves(r, 60, 40, 8, 6)

	if len(leaves) == 0 {
		t.Fatal("expected at least one leaf")
	}

	for _, l := range leaves {
		if l.MinX < 1 || l.MinY < 1 || l.MaxX > 58 || l.MaxY > 38 {
			t.Fatalf("leaf %+v escapes the inset interior", l)
		}
	}

	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			if overlaps(leaves[i], leaves[j]) {
				t.Fatalf("leaves %+v and %+v overlap", leaves[i], leaves[j])
			}
		}
	}
}

func TestPartitionLeavesStopsWhenTooSmallToSplit(t *testing.T) {
	r := rng.New(1)
	leaves := partitionLeaves(r, 20, 20, 100, 9)
	if len(leaves) >= 100 {
		t.Fatalf("expected partitioning to stop early on a small grid, got %d leaves", len(leaves))
	}
}

func overlaps(a, b grid.Bounds) bool {
	return a.MinX <= b.MaxX && b.MinX <= a.MaxX && a.MinY <= b.MaxY && b.MinY <= a.MaxY
}
