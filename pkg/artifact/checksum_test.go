package artifact

import (
	"testing"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

func TestComputeChecksumDeterministic(t *testing.T) {
	terrain := []byte{0, 1, 0, 1}
	rooms := []Room{NewRoom(0, 0, 0, 2, 2, RoomStandard, 1)}
	conns := []Connection{NewConnection(0, 1, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})}
	spawns := []SpawnPoint{NewSpawnPoint(grid.Point{X: 0, Y: 0}, 0, SpawnEntrance, []string{"spawn", "entrance"}, 1, 0)}

	a := ComputeChecksum(terrain, rooms, conns, spawns)
	b := ComputeChecksum(terrain, rooms, conns, spawns)
	if a != b {
		t.Fatalf("checksum not deterministic: %q != %q", a, b)
	}
}

func TestComputeChecksumHasVersionPrefix(t *testing.T) {
	sum := ComputeChecksum(nil, nil, nil, nil)
	if len(sum) < 3 || sum[0] != 'v' {
		t.Fatalf("checksum %q does not start with version prefix", sum)
	}
}

func TestComputeChecksumSensitiveToTerrain(t *testing.T) {
	a := ComputeChecksum([]byte{0, 0}, nil, nil, nil)
	b := ComputeChecksum([]byte{0, 1}, nil, nil, nil)
	if a == b {
		t.Fatal("different terrain bytes produced the same checksum")
	}
}

func TestComputeChecksumTagOrderInsensitive(t *testing.T) {
	spawnsA := []SpawnPoint{NewSpawnPoint(grid.Point{X: 0, Y: 0}, 0, SpawnEntrance, []string{"spawn", "entrance"}, 1, 0)}
	spawnsB := []SpawnPoint{NewSpawnPoint(grid.Point{X: 0, Y: 0}, 0, SpawnEntrance, []string{"entrance", "spawn"}, 1, 0)}

	a := ComputeChecksum(nil, nil, nil, spawnsA)
	b := ComputeChecksum(nil, nil, nil, spawnsB)
	if a != b {
		t.Fatal("checksum should be insensitive to caller-supplied tag order")
	}
}
