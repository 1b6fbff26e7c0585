package validate

import (
	"fmt"

	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/dungeonerr"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/region"
)

// Validate checks every documented invariant against d and returns a
// Result listing every violation found; Result.Success is true exactly
// when no error-severity violation is present. A malformed dungeon
// (terrain length mismatched with width*height) is reported as a
// CONFIG_INVALID error rather than a Violation, since it indicates the
// artifact itself cannot be interpreted.
func Validate(d *artifact.Dungeon) (*Result, error) {
	g, err := grid.FromBytes(d.Width, d.Height, d.Terrain)
	if err != nil {
		return nil, dungeonerr.Wrap(dungeonerr.ConfigInvalid, "dungeon terrain does not match its declared dimensions", err)
	}

	result := &Result{Success: true}

	checkSpawns(result, d, g)
	checkRoomReachability(result, d, g)
	checkConnectionGraph(result, d)
	checkRoomBounds(result, d, g)
	checkRoomOverlap(result, d)
	checkChecksum(result, d)

	return result, nil
}

func checkSpawns(r *Result, d *artifact.Dungeon, g *grid.Grid) {
	var entrances, exits int
	for _, sp := range d.Spawns {
		switch sp.Type {
		case artifact.SpawnEntrance:
			entrances++
		case artifact.SpawnExit:
			exits++
		}
		if g.Get(sp.Position.X, sp.Position.Y) != grid.Floor {
			r.addError("invariant.spawn.floor",
				fmt.Sprintf("spawn at (%d,%d) type %q is not on floor", sp.Position.X, sp.Position.Y, sp.Type))
		}
	}
	if entrances != 1 {
		r.addError("invariant.entrance", fmt.Sprintf("expected exactly one entrance spawn, found %d", entrances))
	} else if g.Get(entrance(d).X, entrance(d).Y) != grid.Floor {
		r.addError("invariant.entrance.floor", "entrance cell is not floor")
	}
	if exits != 1 {
		r.addError("invariant.exit", fmt.Sprintf("expected exactly one exit spawn, found %d", exits))
	}
}

func entrance(d *artifact.Dungeon) grid.Point {
	for _, sp := range d.Spawns {
		if sp.Type == artifact.SpawnEntrance {
			return sp.Position
		}
	}
	return grid.Point{}
}

func checkRoomReachability(r *Result, d *artifact.Dungeon, g *grid.Grid) {
	var entrances []grid.Point
	for _, sp := range d.Spawns {
		if sp.Type == artifact.SpawnEntrance {
			entrances = append(entrances, sp.Position)
		}
	}
	if len(entrances) == 0 {
		return
	}
	start := entrances[0]

	pool := grid.NewBitGridPool()
	mask, release := region.FloodFillBFS(pool, d.Width, d.Height, start.X, start.Y,
		func(x, y int) bool { return g.Get(x, y) == grid.Floor })
	defer release()

	for _, room := range d.Rooms {
		b := room.Bounds()
		hasFloor := false
		reachable := false
		for y := b.MinY; y <= b.MaxY && !reachable; y++ {
			for x := b.MinX; x <= b.MaxX; x++ {
				if g.Get(x, y) != grid.Floor {
					continue
				}
				hasFloor = true
				if mask.Get(x, y) {
					reachable = true
					break
				}
			}
		}
		if hasFloor && !reachable {
			r.addError("invariant.reachability",
				fmt.Sprintf("room %d has floor tiles but none are reachable from the entrance", room.ID))
		}
	}
}

func checkConnectionGraph(r *Result, d *artifact.Dungeon) {
	if len(d.Rooms) <= 1 {
		return
	}
	adjacency := make(map[int][]int, len(d.Rooms))
	for _, c := range d.Connections {
		adjacency[c.FromRoomID] = append(adjacency[c.FromRoomID], c.ToRoomID)
		adjacency[c.ToRoomID] = append(adjacency[c.ToRoomID], c.FromRoomID)
	}

	visited := make(map[int]bool, len(d.Rooms))
	stack := []int{d.Rooms[0].ID}
	visited[d.Rooms[0].ID] = true
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adjacency[id] {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}

	for _, room := range d.Rooms {
		if !visited[room.ID] {
			r.addError("invariant.connectivity",
				fmt.Sprintf("room %d is not reachable from room %d via the connection graph", room.ID, d.Rooms[0].ID))
		}
	}
}

func checkRoomBounds(r *Result, d *artifact.Dungeon, g *grid.Grid) {
	for _, room := range d.Rooms {
		b := room.Bounds()
		if b.MinX < 0 || b.MinY < 0 || b.MaxX >= g.Width() || b.MaxY >= g.Height() {
			r.addError("invariant.bounds", fmt.Sprintf("room %d rectangle %+v lies outside the grid", room.ID, b))
		}
	}
}

func checkRoomOverlap(r *Result, d *artifact.Dungeon) {
	for i := 0; i < len(d.Rooms); i++ {
		if d.Rooms[i].Type == artifact.RoomCavern {
			continue
		}
		for j := i + 1; j < len(d.Rooms); j++ {
			if d.Rooms[j].Type == artifact.RoomCavern {
				continue
			}
			if d.Rooms[i].Overlaps(d.Rooms[j]) {
				r.addError("invariant.overlap",
					fmt.Sprintf("rooms %d and %d overlap", d.Rooms[i].ID, d.Rooms[j].ID))
			}
		}
	}
}

func checkChecksum(r *Result, d *artifact.Dungeon) {
	recomputed := artifact.ComputeChecksum(d.Terrain, d.Rooms, d.Connections, d.Spawns)
	if recomputed != d.Checksum {
		r.addError("invariant.checksum",
			fmt.Sprintf("recomputed checksum %q does not match stored checksum %q", recomputed, d.Checksum))
	}
}
