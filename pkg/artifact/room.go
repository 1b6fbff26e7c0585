package artifact

import "github.com/aldenfall/dungeonkernel/pkg/grid"

// RoomType distinguishes how a room was produced.
type RoomType string

const (
	RoomCavern   RoomType = "cavern"
	RoomStandard RoomType = "standard"
)

// Room is a rectangular or cavern-shaped area of the dungeon.
type Room struct {
	ID      int
	X, Y    int
	Width   int
	Height  int
	CenterX int
	CenterY int
	Type    RoomType
	Seed    uint32
}

// NewRoom builds a Room, computing CenterX/CenterY per the fixed
// floor((2x+width-1)/2) rule so that centers are deterministic and
// identical regardless of caller.
func NewRoom(id, x, y, width, height int, kind RoomType, seed uint32) Room {
	return Room{
		ID:      id,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		CenterX: floorDiv(2*x+width-1, 2),
		CenterY: floorDiv(2*y+height-1, 2),
		Type:    kind,
		Seed:    seed,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Bounds returns the room's rectangle as inclusive grid.Bounds.
func (r Room) Bounds() grid.Bounds {
	return grid.BoundsFromRect(r.X, r.Y, r.Width, r.Height)
}

// Center returns the room's center point.
func (r Room) Center() grid.Point {
	return grid.Point{X: r.CenterX, Y: r.CenterY}
}

// Overlaps reports whether two room rectangles intersect.
func (r Room) Overlaps(other Room) bool {
	ra, rb := r.Bounds(), other.Bounds()
	if ra.MaxX < rb.MinX || rb.MaxX < ra.MinX {
		return false
	}
	if ra.MaxY < rb.MinY || rb.MaxY < ra.MinY {
		return false
	}
	return true
}
