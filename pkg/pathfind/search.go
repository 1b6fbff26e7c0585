package pathfind

import (
	"container/heap"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

// cardinalDeltas and diagonalDeltas are split so neighbor generation can
// apply the no-corner-cutting rule to diagonal moves only.
var cardinalDeltas = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
var diagonalDeltas = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

func passable(g *grid.Grid, x, y int, tunnelWallCost int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	k := g.GetUnchecked(x, y)
	if k != grid.Wall {
		return true
	}
	return tunnelWallCost > 0
}

func stepCost(g *grid.Grid, x, y int, diagonal bool, tunnelWallCost int) float64 {
	cost := 1.0
	if diagonal {
		cost = diagonalStepCost
	}
	if g.GetUnchecked(x, y) == grid.Wall {
		cost += float64(tunnelWallCost)
	}
	return cost
}

// searchAStarOrDijkstra runs A* when useHeuristic is true, Dijkstra
// otherwise (heuristic weight held at zero). Both share the same
// open/closed set machinery and tie-break order.
func searchAStarOrDijkstra(g *grid.Grid, start, goal grid.Point, cfg Config, useHeuristic bool) []grid.Point {
	w, h := g.Width(), g.Height()
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []grid.Point{start}
	}

	index := func(x, y int) int { return y*w + x }

	open := &nodeHeap{}
	heap.Init(open)
	nodes := make(map[int]*searchNode, w*h/4+1)
	cameFrom := make(map[int]int, w*h/4+1)
	closed := make([]bool, w*h)

	hOf := func(x, y int) float64 {
		if !useHeuristic {
			return 0
		}
		return heuristicDistance(cfg.Heuristic, x, y, goal.X, goal.Y)
	}

	startNode := &searchNode{x: start.X, y: start.Y, g: 0, h: hOf(start.X, start.Y)}
	startNode.f = startNode.g + startNode.h
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
			return reconstructPath(cameFrom, w, start, goal)
		}

		for _, n := range neighborsOf(current.x, current.y, cfg.AllowDiagonal, g, cfg.TunnelWallCost) {
			ni := index(n.x, n.y)
			if closed[ni] {
				continue
			}
			tentativeG := current.g + stepCost(g, n.x, n.y, n.diagonal, cfg.TunnelWallCost)

			existing, ok := nodes[ni]
			if ok && tentativeG >= existing.g {
				continue
			}

			cameFrom[ni] = ci
			if !ok {
				existing = &searchNode{x: n.x, y: n.y}
				nodes[ni] = existing
				existing.g = tentativeG
				existing.h = hOf(n.x, n.y)
				existing.f = existing.g + existing.h
				heap.Push(open, existing)
			} else {
				existing.g = tentativeG
				existing.f = existing.g + existing.h
				if existing.index >= 0 {
					heap.Fix(open, existing.index)
				} else {
					heap.Push(open, existing)
				}
			}
		}
	}

	return nil
}

type neighborMove struct {
	x, y     int
	diagonal bool
}

func neighborsOf(x, y int, allowDiagonal bool, g *grid.Grid, tunnelWallCost int) []neighborMove {
	moves := make([]neighborMove, 0, 8)
	for _, d := range cardinalDeltas {
		nx, ny := x+d[0], y+d[1]
		if passable(g, nx, ny, tunnelWallCost) {
			moves = append(moves, neighborMove{nx, ny, false})
		}
	}
	if !allowDiagonal {
		return moves
	}
	for _, d := range diagonalDeltas {
		nx, ny := x+d[0], y+d[1]
		if !passable(g, nx, ny, tunnelWallCost) {
			continue
		}
		// No corner-cutting: both shared cardinal neighbors must be passable.
		if !passable(g, x+d[0], y, tunnelWallCost) || !passable(g, x, y+d[1], tunnelWallCost) {
			continue
		}
		moves = append(moves, neighborMove{nx, ny, true})
	}
	return moves
}

func reconstructPath(cameFrom map[int]int, width int, start, goal grid.Point) []grid.Point {
	startIdx := start.Y*width + start.X
	cur := goal.Y*width + goal.X

	idxToPoint := func(idx int) grid.Point {
		return grid.Point{X: idx % width, Y: idx / width}
	}

	path := []grid.Point{idxToPoint(cur)}
	for cur != startIdx {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		cur = prev
		path = append(path, idxToPoint(cur))
	}

	// path was built goal-to-start; reverse it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
