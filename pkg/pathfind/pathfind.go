package pathfind

import "github.com/aldenfall/dungeonkernel/pkg/grid"

// FindPath computes a path from start to goal over g according to cfg.
// An empty (nil) slice means no path was found; a single-element slice
// means start and goal coincide. The returned path is never mutated in
// place by a later call.
func FindPath(g *grid.Grid, start, goal grid.Point, cfg Config) []grid.Point {
	var path []grid.Point

	switch cfg.Algorithm {
	case JPS:
		path = searchJPS(g, start, goal, cfg)
	case Dijkstra:
		path = searchAStarOrDijkstra(g, start, goal, cfg, false)
	default:
		if cfg.PreferJPS && !cfg.AllowDiagonal {
			path = searchJPS(g, start, goal, cfg)
		}
		if path == nil {
			path = searchAStarOrDijkstra(g, start, goal, cfg, true)
		}
	}

	if len(path) > 1 {
		for i := 0; i < cfg.PathSmoothingPasses; i++ {
			path = smoothPass(g, path)
		}
	}

	return path
}

// smoothPass walks the path once, replacing the longest prefix run
// [i..j] it can with a direct Bresenham line whenever that line crosses
// only floor cells, preserving both endpoints.
func smoothPass(g *grid.Grid, path []grid.Point) []grid.Point {
	if len(path) <= 2 {
		return path
	}

	smoothed := []grid.Point{path[0]}
	i := 0
	for i < len(path)-1 {
		j := len(path) - 1
		for j > i+1 {
			if lineOfSightFloor(g, path[i], path[j]) {
				break
			}
			j--
		}
		smoothed = append(smoothed, path[j])
		i = j
	}
	return smoothed
}

// lineOfSightFloor reports whether the Bresenham interpolation from a to b
// crosses only Floor cells.
func lineOfSightFloor(g *grid.Grid, a, b grid.Point) bool {
	for _, p := range bresenhamLine(a, b) {
		if g.Get(p.X, p.Y) != grid.Floor {
			return false
		}
	}
	return true
}

// bresenhamLine returns every integer grid cell on the line from a to b,
// inclusive of both endpoints.
func bresenhamLine(a, b grid.Point) []grid.Point {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	var points []grid.Point
	x, y := x0, y0
	for {
		points = append(points, grid.Point{X: x, Y: y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
