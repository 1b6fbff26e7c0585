package pathfind

import (
	"math"
	"sort"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

// RoomCenter is the minimal shape CreateConnections needs from a room: an
// identity and a representative point.
type RoomCenter struct {
	ID     int
	Center grid.Point
}

// Edge is one admitted connection between two room centers, carrying the
// path the configured pathfinder found between them.
type Edge struct {
	FromID int
	ToID   int
	Path   []grid.Point
}

func euclidean(a, b grid.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// CreateConnections builds a minimum spanning tree over room centers
// (Prim's-style incremental growth, tie-broken by ascending (fromId,
// toId)), then adds up to max(1, floor(n*0.3)) redundant edges drawn from
// a k-nearest candidate pool per room (k = max(2, ceil(n/6))), rejecting
// candidates whose path length is >= cfg.MaxPathLength. Every admitted
// edge's path is computed via FindPath with cfg.
func CreateConnections(rooms []RoomCenter, g *grid.Grid, cfg Config) []Edge {
	n := len(rooms)
	if n < 2 {
		return nil
	}

	mstEdges := primMST(rooms)

	edges := make([]Edge, 0, len(mstEdges))
	present := make(map[[2]int]bool, len(mstEdges))
	for _, e := range mstEdges {
		path := FindPath(g, rooms[e.FromID].Center, rooms[e.ToID].Center, cfg)
		edges = append(edges, Edge{FromID: rooms[e.FromID].ID, ToID: rooms[e.ToID].ID, Path: path})
		present[edgeKey(e.FromID, e.ToID)] = true
	}

	redundant := redundantEdges(rooms, present, cfg, g)
	edges = append(edges, redundant...)

	return edges
}

type indexEdge struct {
	FromID, ToID int
	Dist         float64
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// primMST grows a spanning tree over room indices (not room IDs) using
// Euclidean distance between centers, tie-broken by ascending (fromId, toId)
// in room-index space.
func primMST(rooms []RoomCenter) []indexEdge {
	n := len(rooms)
	inTree := make([]bool, n)
	inTree[0] = true
	remaining := n - 1

	var mst []indexEdge
	for remaining > 0 {
		best := indexEdge{FromID: -1, ToID: -1, Dist: math.Inf(1)}
		for i := 0; i < n; i++ {
			if !inTree[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if inTree[j] || i == j {
					continue
				}
				d := euclidean(rooms[i].Center, rooms[j].Center)
				if d < best.Dist || (d == best.Dist && lessEdge(i, j, best.FromID, best.ToID)) {
					best = indexEdge{FromID: i, ToID: j, Dist: d}
				}
			}
		}
		inTree[best.ToID] = true
		mst = append(mst, best)
		remaining--
	}
	return mst
}

func lessEdge(fromA, toA, fromB, toB int) bool {
	if fromA != fromB {
		return fromA < fromB
	}
	return toA < toB
}

// redundantEdges adds up to max(1, floor(n*0.3)) extra edges drawn from a
// k-nearest candidate pool per room, ascending by distance, skipping pairs
// already connected and candidates whose computed path is too long.
func redundantEdges(rooms []RoomCenter, present map[[2]int]bool, cfg Config, g *grid.Grid) []Edge {
	n := len(rooms)
	budget := int(math.Floor(float64(n) * 0.3))
	if budget < 1 {
		budget = 1
	}
	k := int(math.Ceil(float64(n) / 6))
	if k < 2 {
		k = 2
	}

	type candidate struct {
		i, j int
		dist float64
	}
	var candidates []candidate

	for i := 0; i < n; i++ {
		type neighbor struct {
			j    int
			dist float64
		}
		neighbors := make([]neighbor, 0, n-1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			neighbors = append(neighbors, neighbor{j, euclidean(rooms[i].Center, rooms[j].Center)})
		}
		sort.Slice(neighbors, func(a, b int) bool { return neighbors[a].dist < neighbors[b].dist })
		limit := k
		if limit > len(neighbors) {
			limit = len(neighbors)
		}
		for _, nb := range neighbors[:limit] {
			if present[edgeKey(i, nb.j)] {
				continue
			}
			candidates = append(candidates, candidate{i, nb.j, nb.dist})
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].dist != candidates[b].dist {
			return candidates[a].dist < candidates[b].dist
		}
		if candidates[a].i != candidates[b].i {
			return candidates[a].i < candidates[b].i
		}
		return candidates[a].j < candidates[b].j
	})

	var added []Edge
	for _, c := range candidates {
		if len(added) >= budget {
			break
		}
		key := edgeKey(c.i, c.j)
		if present[key] {
			continue
		}
		path := FindPath(g, rooms[c.i].Center, rooms[c.j].Center, cfg)
		if cfg.MaxPathLength > 0 && len(path) >= cfg.MaxPathLength {
			continue
		}
		present[key] = true
		added = append(added, Edge{FromID: rooms[c.i].ID, ToID: rooms[c.j].ID, Path: path})
	}
	return added
}
