package pathfind

import (
	"container/heap"
	"math"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

// DijkstraMap is a multi-source scalar distance field over a grid,
// computed once from a set of goal points and reusable for repeated
// get/downhill/flee queries.
type DijkstraMap struct {
	width, height int
	dist          []float64
}

// ComputeDijkstraMap computes d(x,y) = the minimum cost path from any
// point in goals to (x,y), cardinal cost 1, diagonal cost sqrt(2), walls
// impassable. maxDistance <= 0 means unbounded. Unreachable cells retain
// +Inf.
func ComputeDijkstraMap(g *grid.Grid, goals []grid.Point, allowDiagonal bool, maxDistance float64) *DijkstraMap {
	w, h := g.Width(), g.Height()
	dm := &DijkstraMap{width: w, height: h, dist: make([]float64, w*h)}
	for i := range dm.dist {
		dm.dist[i] = math.Inf(1)
	}

	index := func(x, y int) int { return y*w + x }

	open := &nodeHeap{}
	heap.Init(open)
	for _, goal := range goals {
		if !g.InBounds(goal.X, goal.Y) || g.GetUnchecked(goal.X, goal.Y) == grid.Wall {
			continue
		}
		idx := index(goal.X, goal.Y)
		if dm.dist[idx] == 0 {
			continue
		}
		dm.dist[idx] = 0
		heap.Push(open, &searchNode{x: goal.X, y: goal.Y, g: 0, h: 0, f: 0})
	}

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		ci := index(current.x, current.y)
		if current.g > dm.dist[ci] {
			continue
		}

		for _, n := range neighborsOf(current.x, current.y, allowDiagonal, g, 0) {
			ni := index(n.x, n.y)
			step := 1.0
			if n.diagonal {
				step = diagonalStepCost
			}
			tentative := current.g + step
			if maxDistance > 0 && tentative > maxDistance {
				continue
			}
			if tentative < dm.dist[ni] {
				dm.dist[ni] = tentative
				heap.Push(open, &searchNode{x: n.x, y: n.y, g: tentative, h: 0, f: tentative})
			}
		}
	}

	return dm
}

// Get returns the distance at (x,y), or +Inf if out of bounds or unreached.
func (dm *DijkstraMap) Get(x, y int) float64 {
	if x < 0 || x >= dm.width || y < 0 || y >= dm.height {
		return math.Inf(1)
	}
	return dm.dist[y*dm.width+x]
}

// GetPointsInRange returns, in row-major order, every point whose distance
// falls within [lo, hi].
func (dm *DijkstraMap) GetPointsInRange(lo, hi float64) []grid.Point {
	var points []grid.Point
	for y := 0; y < dm.height; y++ {
		for x := 0; x < dm.width; x++ {
			d := dm.dist[y*dm.width+x]
			if d >= lo && d <= hi {
				points = append(points, grid.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// FindFurthestPoint returns the point with the greatest finite distance,
// ties broken by row-major order, along with that distance.
func (dm *DijkstraMap) FindFurthestPoint() (grid.Point, float64) {
	best := grid.Point{}
	bestDist := math.Inf(-1)
	for y := 0; y < dm.height; y++ {
		for x := 0; x < dm.width; x++ {
			d := dm.dist[y*dm.width+x]
			if math.IsInf(d, 1) {
				continue
			}
			if d > bestDist {
				bestDist = d
				best = grid.Point{X: x, Y: y}
			}
		}
	}
	return best, bestDist
}

// GetDownhillDirection returns the cardinal-preferred neighbor of (x,y)
// whose distance is strictly less than (x,y)'s, or ok=false if (x,y) is a
// local minimum or out of bounds.
func (dm *DijkstraMap) GetDownhillDirection(x, y int) (grid.Point, bool) {
	center := dm.Get(x, y)
	if math.IsInf(center, 1) {
		return grid.Point{}, false
	}

	var deltas = [8][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	best := grid.Point{}
	found := false
	bestDist := center
	for _, d := range deltas {
		nd := dm.Get(x+d[0], y+d[1])
		if nd < bestDist {
			bestDist = nd
			best = grid.Point{X: x + d[0], Y: y + d[1]}
			found = true
		}
	}
	return best, found
}

// Flee returns a new DijkstraMap whose distances are transformed by
// d' = -1.2*d and then smoothed by one pass averaging each finite cell
// with its in-bounds finite neighbors, used to route away from the
// source goals.
func (dm *DijkstraMap) Flee() *DijkstraMap {
	flee := &DijkstraMap{width: dm.width, height: dm.height, dist: make([]float64, len(dm.dist))}
	for i, d := range dm.dist {
		if math.IsInf(d, 1) {
			flee.dist[i] = d
			continue
		}
		flee.dist[i] = -1.2 * d
	}

	smoothed := make([]float64, len(flee.dist))
	copy(smoothed, flee.dist)
	for y := 0; y < flee.height; y++ {
		for x := 0; x < flee.width; x++ {
			d := flee.dist[y*flee.width+x]
			if math.IsInf(d, 1) || math.IsInf(d, -1) {
				continue
			}
			sum, count := d, 1
			for _, n := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nx, ny := x+n[0], y+n[1]
				if nx < 0 || nx >= flee.width || ny < 0 || ny >= flee.height {
					continue
				}
				nd := flee.dist[ny*flee.width+nx]
				if math.IsInf(nd, 1) {
					continue
				}
				sum += nd
				count++
			}
			smoothed[y*flee.width+x] = sum / float64(count)
		}
	}
	flee.dist = smoothed
	return flee
}
