package pathfind

import (
	"container/heap"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

// jpsDeltas enumerates the four cardinal travel directions JPS jumps along.
var jpsDeltas = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func floorPassable(g *grid.Grid, x, y int) bool {
	return g.InBounds(x, y) && g.GetUnchecked(x, y) != grid.Wall
}

// searchJPS runs strict 4-directional, floor-only jump-point search. It
// returns nil (not found) rather than falling back; callers decide whether
// to retry with the configured fallback algorithm.
func searchJPS(g *grid.Grid, start, goal grid.Point, cfg Config) []grid.Point {
	if !floorPassable(g, start.X, start.Y) || !floorPassable(g, goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []grid.Point{start}
	}

	w := g.Width()
	index := func(x, y int) int { return y*w + x }

	open := &nodeHeap{}
	heap.Init(open)
	nodes := make(map[int]*searchNode)
	cameFrom := make(map[int]int)
	closed := make(map[int]bool)

	hOf := func(x, y int) float64 { return heuristicDistance(cfg.Heuristic, x, y, goal.X, goal.Y) }

	startNode := &searchNode{x: start.X, y: start.Y, g: 0, h: hOf(start.X, start.Y)}
	startNode.f = startNode.h
	heap.Push(open, startNode)
	nodes[index(start.X, start.Y)] = startNode

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		ci := index(current.x, current.y)
		if closed[ci] {
			continue
		}
		closed[ci] = true

		if current.x == goal.X && current.y == goal.Y {
			jumpPath := reconstructPath(cameFrom, w, start, goal)
			return fillJumpPath(jumpPath)
		}

		for _, d := range jpsDeltas {
			jx, jy, jg, ok := jump(g, current.x, current.y, d[0], d[1], goal)
			if !ok {
				continue
			}
			ji := index(jx, jy)
			if closed[ji] {
				continue
			}
			tentativeG := current.g + jg
			existing, seen := nodes[ji]
			if seen && tentativeG >= existing.g {
				continue
			}
			cameFrom[ji] = ci
			if !seen {
				existing = &searchNode{x: jx, y: jy}
				nodes[ji] = existing
			}
			existing.g = tentativeG
			existing.h = hOf(jx, jy)
			existing.f = existing.g + existing.h
			if existing.index >= 0 {
				heap.Fix(open, existing.index)
			} else {
				heap.Push(open, existing)
			}
		}
	}

	return nil
}

// jump walks from (x,y) in direction (dx,dy) one cardinal step at a time,
// looking for the goal or a forced neighbor (a jump point). Returns the
// jump point and the cumulative straight-line cost from (x,y), or ok=false
// if the direction runs into a wall or the grid edge before finding one.
func jump(g *grid.Grid, x, y, dx, dy int, goal grid.Point) (int, int, float64, bool) {
	cost := 0.0
	for {
		nx, ny := x+dx, y+dy
		if !floorPassable(g, nx, ny) {
			return 0, 0, 0, false
		}
		cost++
		x, y = nx, ny

		if x == goal.X && y == goal.Y {
			return x, y, cost, true
		}

		if hasForcedNeighbor(g, x, y, dx, dy) {
			return x, y, cost, true
		}
	}
}

// hasForcedNeighbor detects a cell adjacent to the travel axis that is
// blocked on one side but open one step further, which forces a turn here.
func hasForcedNeighbor(g *grid.Grid, x, y, dx, dy int) bool {
	if dx != 0 { // horizontal travel: check north/south
		if !floorPassable(g, x, y-1) && floorPassable(g, x+dx, y-1) {
			return true
		}
		if !floorPassable(g, x, y+1) && floorPassable(g, x+dx, y+1) {
			return true
		}
		return false
	}
	// vertical travel: check east/west
	if !floorPassable(g, x-1, y) && floorPassable(g, x-1, y+dy) {
		return true
	}
	if !floorPassable(g, x+1, y) && floorPassable(g, x+1, y+dy) {
		return true
	}
	return false
}

// fillJumpPath expands the sparse sequence of jump points into a dense,
// cardinal-step path so downstream consumers receive every intermediate cell.
func fillJumpPath(jumpPoints []grid.Point) []grid.Point {
	if len(jumpPoints) < 2 {
		return jumpPoints
	}
	dense := []grid.Point{jumpPoints[0]}
	for i := 1; i < len(jumpPoints); i++ {
		prev, next := jumpPoints[i-1], jumpPoints[i]
		dx, dy := sign(next.X-prev.X), sign(next.Y-prev.Y)
		x, y := prev.X, prev.Y
		for x != next.X || y != next.Y {
			x += dx
			y += dy
			dense = append(dense, grid.Point{X: x, Y: y})
		}
	}
	return dense
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
