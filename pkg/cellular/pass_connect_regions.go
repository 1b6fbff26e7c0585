package cellular

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/cavern"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/region"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

const sampleCap = 50

// connectRegionsPass is the optional multi-region variant: when
// cfg.ConnectAllRegions keeps more than one region, it wires them into a
// single connected set by repeatedly joining the nearest
// connected/unconnected region pair with a 3x3-widened L-shaped tunnel.
type connectRegionsPass struct {
	cfg Config
}

func (p connectRegionsPass) ID() string                       { return "connectRegions" }
func (p connectRegionsPass) InputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p connectRegionsPass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeonState }
func (p connectRegionsPass) RequiredStreams() []rng.StreamName {
	return []rng.StreamName{rng.StreamConnections}
}

func (p connectRegionsPass) Run(ctx *pipeline.Context, input any) (any, error) {
	state := input.(*artifact.DungeonState)
	kept, _ := ctx.Meta[keptRegionsMetaKey].([]region.Region)

	if !p.cfg.ConnectAllRegions || len(kept) <= 1 {
		return state, nil
	}

	connStream := ctx.Streams.Get(rng.StreamConnections)
	connected := []int{0}
	unconnectedSet := make(map[int]bool, len(kept)-1)
	for i := 1; i < len(kept); i++ {
		unconnectedSet[i] = true
	}

	for len(unconnectedSet) > 0 {
		if ctx.Cancel.IsCancelled() {
			return nil, cancelledDuringAutomaton()
		}

		bestC, bestU, bestDist := -1, -1, -1
		for _, ci := range connected {
			for ui := range unconnectedSet {
				d := cavern.ManhattanDistance(kept[ci], kept[ui])
				if bestDist < 0 || d < bestDist || (d == bestDist && (ci < bestC || (ci == bestC && ui < bestU))) {
					bestDist, bestC, bestU = d, ci, ui
				}
			}
		}
		if bestC < 0 {
			break
		}

		n := min(sampleCap, len(kept[bestC].Points), len(kept[bestU].Points))
		cPts := samplePoints(connStream, kept[bestC].Points, n)
		uPts := samplePoints(connStream, kept[bestU].Points, n)
		from, to := cavern.NearestPointPair(cPts, uPts)

		path := carveLTunnel(state.Grid, from, to)
		state.Connections = append(state.Connections, artifact.NewConnection(bestC, bestU, path))

		connected = append(connected, bestU)
		delete(unconnectedSet, bestU)
	}

	return state, nil
}

// samplePoints draws up to n points from pts without replacement: it
// shuffles a copy of pts with the supplied stream and keeps the first n.
func samplePoints(r *rng.Rng, pts []grid.Point, n int) []grid.Point {
	if n > len(pts) {
		n = len(pts)
	}
	cp := make([]grid.Point, len(pts))
	copy(cp, pts)
	r.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	return cp[:n]
}

// carveLTunnel writes Floor along an L-shaped path from `from` to `to`
// (horizontal run, then vertical run), widened to 3x3 at every step, and
// returns the traversed centerline cells.
func carveLTunnel(g *grid.Grid, from, to grid.Point) []grid.Point {
	var path []grid.Point

	carve := func(x, y int) {
		path = append(path, grid.Point{X: x, Y: y})
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				g.Set(x+dx, y+dy, grid.Floor)
			}
		}
	}

	x, y := from.X, from.Y
	carve(x, y)

	stepX := 1
	if to.X < x {
		stepX = -1
	}
	for x != to.X {
		x += stepX
		carve(x, y)
	}

	stepY := 1
	if to.Y < y {
		stepY = -1
	}
	for y != to.Y {
		y += stepY
		carve(x, y)
	}

	return path
}
