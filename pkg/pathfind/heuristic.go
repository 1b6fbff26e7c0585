package pathfind

import "math"

func heuristicDistance(kind Heuristic, x1, y1, x2, y2 int) float64 {
	dx := math.Abs(float64(x2 - x1))
	dy := math.Abs(float64(y2 - y1))
	switch kind {
	case Euclidean:
		return math.Sqrt(dx*dx + dy*dy)
	case Chebyshev:
		if dx > dy {
			return dx
		}
		return dy
	default: // Manhattan
		return dx + dy
	}
}
