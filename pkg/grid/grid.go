package grid

import "fmt"

// Grid is a row-major dense 2D array of cell kinds. Index = y*width + x.
// Out-of-bounds Get returns Wall; out-of-bounds Set is a no-op, matching
// the safe-accessor contract every pass relies on.
type Grid struct {
	width, height int
	cells         []CellKind
}

// New creates a width x height grid with every cell set to fill.
func New(width, height int, fill CellKind) *Grid {
	cells := make([]CellKind, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the grid's width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// Get returns the cell kind at (x,y). Out-of-bounds coordinates read as Wall.
func (g *Grid) Get(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[g.index(x, y)]
}

// GetUnchecked returns the cell kind at (x,y) without a bounds check.
// Callers must have already proven (x,y) is in bounds.
func (g *Grid) GetUnchecked(x, y int) CellKind {
	return g.cells[g.index(x, y)]
}

// Set writes k at (x,y). Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(x, y int, k CellKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = k
}

// SetUnchecked writes k at (x,y) without a bounds check.
func (g *Grid) SetUnchecked(x, y int, k CellKind) {
	g.cells[g.index(x, y)] = k
}

// FillRect writes k to every in-bounds cell of b, intersected with the grid.
func (g *Grid) FillRect(b Bounds, k CellKind) {
	minX, minY := max(b.MinX, 0), max(b.MinY, 0)
	maxX, maxY := min(b.MaxX, g.width-1), min(b.MaxY, g.height-1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			g.cells[g.index(x, y)] = k
		}
	}
}

var neighbors4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var neighbors8 = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// CountNeighbors4 counts 4-connected neighbors matching target.
// Out-of-bounds neighbors are treated as Wall for the purpose of the count.
func (g *Grid) CountNeighbors4(x, y int, target CellKind) int {
	return g.countNeighbors(x, y, target, neighbors4[:])
}

// CountNeighbors8 counts 8-connected neighbors matching target.
// Out-of-bounds neighbors are treated as Wall for the purpose of the count.
func (g *Grid) CountNeighbors8(x, y int, target CellKind) int {
	return g.countNeighbors(x, y, target, neighbors8[:])
}

func (g *Grid) countNeighbors(x, y int, target CellKind, deltas [][2]int) int {
	count := 0
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		var k CellKind
		if g.InBounds(nx, ny) {
			k = g.GetUnchecked(nx, ny)
		} else {
			k = Wall
		}
		if k == target {
			count++
		}
	}
	return count
}

// ApplyCellularAutomataInto runs one step of the 4/5-rule cellular automaton
// into dst, which must have the same dimensions as g. For every cell, the
// count of Wall neighbors (8-connected, out-of-bounds counted as Wall) is
// compared against survivalMin/birthMin:
//   - if the center is Wall, it survives (stays Wall) iff neighbors >= survivalMin
//   - if the center is Floor, it is born (becomes Wall) iff neighbors >= birthMin
//
// dst is written only; g is read only. The two may not alias.
func (g *Grid) ApplyCellularAutomataInto(survivalMin, birthMin int, dst *Grid) {
	if dst.width != g.width || dst.height != g.height {
		panic(fmt.Sprintf("grid: dst dimensions %dx%d do not match src %dx%d", dst.width, dst.height, g.width, g.height))
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			wallNeighbors := g.CountNeighbors8(x, y, Wall)
			var next CellKind
			if g.GetUnchecked(x, y) == Wall {
				if wallNeighbors >= survivalMin {
					next = Wall
				} else {
					next = Floor
				}
			} else {
				if wallNeighbors >= birthMin {
					next = Wall
				} else {
					next = Floor
				}
			}
			dst.SetUnchecked(x, y, next)
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellKind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equals reports whether two grids have identical dimensions and contents.
func (g *Grid) Equals(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Bytes returns an immutable byte copy of the terrain in row-major order,
// one byte per cell, suitable for embedding in a finalized artifact or
// feeding to the checksum hasher.
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.cells))
	for i, c := range g.cells {
		out[i] = byte(c)
	}
	return out
}

// FromBytes reconstructs a Grid from a row-major terrain byte array, the
// inverse of Bytes. Returns an error if the slice length does not match
// width*height.
func FromBytes(width, height int, data []byte) (*Grid, error) {
	if len(data) != width*height {
		return nil, fmt.Errorf("grid: terrain length %d does not match %dx%d", len(data), width, height)
	}
	cells := make([]CellKind, len(data))
	for i, b := range data {
		cells[i] = CellKind(b)
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
