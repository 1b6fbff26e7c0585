package region

import "github.com/aldenfall/dungeonkernel/pkg/grid"

var floodFillDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FloodFillBFS performs a 4-connected BFS flood fill from (startX,
// startY), visiting any neighbor for which predicate returns true, and
// returns a pooled BitGrid visited mask plus a release closure. The
// caller must call the returned release function on every exit path;
// failing to do so leaks the mask out of the pool.
func FloodFillBFS(pool *grid.BitGridPool, w, h, startX, startY int, predicate func(x, y int) bool) (*grid.BitGrid, func()) {
	mask := pool.Acquire(w, h)
	release := func() { pool.Release(mask) }

	if startX < 0 || startX >= w || startY < 0 || startY >= h || !predicate(startX, startY) {
		return mask, release
	}

	queue := []grid.Point{{X: startX, Y: startY}}
	mask.Set(startX, startY)

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, d := range floodFillDeltas {
			nx, ny := p.X+d[0], p.Y+d[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if mask.Get(nx, ny) || !predicate(nx, ny) {
				continue
			}
			mask.Set(nx, ny)
			queue = append(queue, grid.Point{X: nx, Y: ny})
		}
	}

	return mask, release
}
