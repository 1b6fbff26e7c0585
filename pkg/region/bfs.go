package region

import "github.com/aldenfall/dungeonkernel/pkg/grid"

// FindRegionsBFS returns the connected components of cells equal to
// target, found by a row-major scan seeding a BFS from each first-seen
// unvisited cell. Region ids are assigned in the order of that scan;
// each region's Points are in BFS enqueue order starting from its
// first-seen cell. Regions smaller than opts.MinSize are excluded.
func FindRegionsBFS(g *grid.Grid, target grid.CellKind, opts Options) []Region {
	w, h := g.Width(), g.Height()
	visited := make([]bool, w*h)
	deltas := neighborDeltas(opts.Diagonal)

	var regions []Region
	nextID := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || g.GetUnchecked(x, y) != target {
				continue
			}

			queue := []grid.Point{{X: x, Y: y}}
			visited[idx] = true
			points := make([]grid.Point, 0, 16)

			for head := 0; head < len(queue); head++ {
				p := queue[head]
				points = append(points, p)
				for _, d := range deltas {
					nx, ny := p.X+d[0], p.Y+d[1]
					if !g.InBounds(nx, ny) {
						continue
					}
					nidx := ny*w + nx
					if visited[nidx] || g.GetUnchecked(nx, ny) != target {
						continue
					}
					visited[nidx] = true
					queue = append(queue, grid.Point{X: nx, Y: ny})
				}
			}

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
	}

	return regions
}
