package cavern

import (
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/region"
)

// CenterOf returns the region's bounding-box center, used as its
// representative point for center-to-center distance queries.
func CenterOf(r region.Region) grid.Point {
	return grid.Point{X: (r.Bounds.MinX + r.Bounds.MaxX) / 2, Y: (r.Bounds.MinY + r.Bounds.MaxY) / 2}
}

// ManhattanDistance is the center-to-center distance connectRegions ranks
// candidate pairs by.
func ManhattanDistance(a, b region.Region) int {
	ca, cb := CenterOf(a), CenterOf(b)
	return abs(ca.X-cb.X) + abs(ca.Y-cb.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NearestPointPair scans every combination in the two (caller-sampled)
// point slices and returns the pair with the smallest Euclidean distance.
// Callers are expected to have already drawn their candidate samples from
// a stream (e.g. up to min(50, |R_c|, |R_u|) points per region) before
// calling this; NearestPointPair itself performs no randomness.
func NearestPointPair(a, b []grid.Point) (grid.Point, grid.Point) {
	bestDistSq := -1
	var bestA, bestB grid.Point
	for i := range a {
		for j := range b {
			dx := a[i].X - b[j].X
			dy := a[i].Y - b[j].Y
			d := dx*dx + dy*dy
			if bestDistSq < 0 || d < bestDistSq {
				bestDistSq = d
				bestA, bestB = a[i], b[j]
			}
		}
	}
	return bestA, bestB
}
