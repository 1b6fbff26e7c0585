package pathfind

// Algorithm selects which search strategy FindPath dispatches to.
type Algorithm string

const (
	AStar    Algorithm = "astar"
	Dijkstra Algorithm = "dijkstra"
	JPS      Algorithm = "jps"
)

// Heuristic selects the distance estimate used by AStar and JPS;
// Dijkstra ignores it (its h is always zero).
type Heuristic string

const (
	Manhattan Heuristic = "manhattan"
	Euclidean Heuristic = "euclidean"
	Chebyshev Heuristic = "chebyshev"
)

// diagonalStepCost is the implementation-fixed cost of a diagonal move.
const diagonalStepCost = 1.4142135623730951

// Config configures a single FindPath call.
type Config struct {
	Algorithm           Algorithm
	Heuristic           Heuristic
	AllowDiagonal       bool
	MaxPathLength       int
	PathSmoothingPasses int
	TunnelWallCost      int
	CorridorWidth       int
	PreferJPS           bool
}

// DefaultConfig returns the pathfinder's baseline configuration: A* with
// the Manhattan heuristic, no diagonals, no tunneling, no smoothing.
func DefaultConfig() Config {
	return Config{
		Algorithm:           AStar,
		Heuristic:           Manhattan,
		AllowDiagonal:       false,
		MaxPathLength:       0,
		PathSmoothingPasses: 0,
		TunnelWallCost:      0,
		CorridorWidth:       1,
		PreferJPS:           false,
	}
}
