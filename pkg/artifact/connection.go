package artifact

import "github.com/aldenfall/dungeonkernel/pkg/grid"

// Connection is a corridor between two rooms, carrying the traversed path.
type Connection struct {
	FromRoomID int
	ToRoomID   int
	Path       []grid.Point
	PathLength int
}

// NewConnection builds a Connection, deriving PathLength from the path so
// the two never drift apart.
func NewConnection(fromRoomID, toRoomID int, path []grid.Point) Connection {
	return Connection{
		FromRoomID: fromRoomID,
		ToRoomID:   toRoomID,
		Path:       path,
		PathLength: len(path),
	}
}
