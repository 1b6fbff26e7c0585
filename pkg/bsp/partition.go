package bsp

import (
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// partitionLeaves recursively halves the interior of a width x height
// grid (inset by a 1-cell border) until roomCount leaves exist or no
// remaining leaf is large enough to split further. Each split picks its
// axis by aspect ratio (splitting the longer side), falling back to a
// coin flip for near-square leaves, and its cut position uniformly
// within the range that keeps both children at least minPartitionSize
// wide and tall.
func partitionLeaves(r *rng.Rng, width, height, roomCount, minPartitionSize int) []grid.Bounds {
	root := grid.Bounds{MinX: 1, MinY: 1, MaxX: width - 2, MaxY: height - 2}
	leaves := []grid.Bounds{root}

	for len(leaves) < roomCount {
		splittable := make([]int, 0, len(leaves))
		for i, l := range leaves {
			if canSplit(l, minPartitionSize) {
				splittable = append(splittable, i)
			}
		}
		if len(splittable) == 0 {
			break
		}

		idx := splittable[r.Range(0, len(splittable)-1)]
		a, b := split(leaves[idx], r, minPartitionSize)

		leaves[idx] = leaves[len(leaves)-1]
		leaves = leaves[:len(leaves)-1]
		leaves = append(leaves, a, b)
	}

	return leaves
}

func canSplit(b grid.Bounds, minPartitionSize int) bool {
	return b.Width() >= 2*minPartitionSize || b.Height() >= 2*minPartitionSize
}

func split(b grid.Bounds, r *rng.Rng, minPartitionSize int) (grid.Bounds, grid.Bounds) {
	w, h := b.Width(), b.Height()
	canVertical := w >= 2*minPartitionSize
	canHorizontal := h >= 2*minPartitionSize

	var vertical bool
	switch {
	case canVertical && canHorizontal:
		switch {
		case w*4 > h*5:
			vertical = true
		case h*4 > w*5:
			vertical = false
		default:
			vertical = r.Bool()
		}
	case canVertical:
		vertical = true
	default:
		vertical = false
	}

	if vertical {
		cut := b.MinX + r.Range(minPartitionSize, w-minPartitionSize)
		return grid.Bounds{MinX: b.MinX, MinY: b.MinY, MaxX: cut - 1, MaxY: b.MaxY},
			grid.Bounds{MinX: cut, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
	}

	cut := b.MinY + r.Range(minPartitionSize, h-minPartitionSize)
	return grid.Bounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: cut - 1},
		grid.Bounds{MinX: b.MinX, MinY: cut, MaxX: b.MaxX, MaxY: b.MaxY}
}
