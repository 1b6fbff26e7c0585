package region

import "github.com/aldenfall/dungeonkernel/pkg/grid"

// Region is one maximal connected component of cells sharing a chosen
// kind. Points is in the order of discovery for the extractor that
// produced it; the two extractors in this package (BFS and union-find)
// agree on region identity and size but diverge on point order, so a
// caller hashing region point sequences must depend on only one.
type Region struct {
	ID     int
	Points []grid.Point
	Bounds grid.Bounds
	Size   int
}

// Options configures region extraction.
type Options struct {
	// MinSize excludes regions with fewer than MinSize cells from the
	// result. Zero means no filtering.
	MinSize int
	// Diagonal selects 8-connectivity when true, 4-connectivity when false.
	Diagonal bool
}

func neighborDeltas(diagonal bool) [][2]int {
	if diagonal {
		return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	}
	return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
}

func boundsOf(points []grid.Point) grid.Bounds {
	b := grid.Bounds{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}
