package region

import (
	"sort"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

// FindRegionsUnionFind finds the same partition as FindRegionsBFS using
// union-find instead: every cell equal to target is unioned with its
// right/down neighbor (and, under 8-connectivity, its down-left/down-right
// diagonal neighbors) when that neighbor also equals target, then cells
// are grouped by root. Region ids are assigned in the row-major order
// their root is first seen; each region's Points are in plain row-major
// scan order, NOT BFS discovery order — callers that hash region point
// sequences must depend on only one of the two extractors.
func FindRegionsUnionFind(g *grid.Grid, target grid.CellKind, opts Options) []Region {
	w, h := g.Width(), g.Height()
	uf := NewUnionFind(w * h)

	unionDeltas := [][2]int{{1, 0}, {0, 1}}
	if opts.Diagonal {
		unionDeltas = append(unionDeltas, [2]int{1, 1}, [2]int{-1, 1})
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.GetUnchecked(x, y) != target {
				continue
			}
			for _, d := range unionDeltas {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) || g.GetUnchecked(nx, ny) != target {
					continue
				}
				uf.Union(y*w+x, ny*w+nx)
			}
		}
	}

	rootOrder := make(map[int]int)
	byRoot := make(map[int][]grid.Point)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.GetUnchecked(x, y) != target {
				continue
			}
			root := uf.Find(y*w + x)
			if _, seen := rootOrder[root]; !seen {
				rootOrder[root] = len(rootOrder)
			}
			byRoot[root] = append(byRoot[root], grid.Point{X: x, Y: y})
		}
	}

	regions := make([]Region, 0, len(byRoot))
	ids := make([]int, 0, len(byRoot))
	for root := range byRoot {
		ids = append(ids, root)
	}
	// Sort roots by their discovery order so region ids are assigned in
	// row-major first-seen order, matching FindRegionsBFS's ordering contract.
	sort.Slice(ids, func(i, j int) bool { return rootOrder[ids[i]] < rootOrder[ids[j]] })

	nextID := 0
	for _, root := range ids {
		points := byRoot[root]
		if opts.MinSize > 0 && len(points) < opts.MinSize {
			continue
		}
		regions = append(regions, Region{
			ID:     nextID,
			Points: points,
			Bounds: boundsOf(points),
			Size:   len(points),
		})
		nextID++
	}

	return regions
}
