package artifact

import (
	"sort"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

// SpawnType tags the purpose of a SpawnPoint.
type SpawnType string

const (
	SpawnEntrance SpawnType = "entrance"
	SpawnExit     SpawnType = "exit"
)

// SpawnPoint is a tagged location a downstream consumer may spawn
// entities or items at.
type SpawnPoint struct {
	Position          grid.Point
	RoomID            int
	Type              SpawnType
	Tags              []string
	Weight            float32
	DistanceFromStart int
}

// NewSpawnPoint builds a SpawnPoint with its tags canonicalized
// (deduplicated and lexicographically sorted) so hashing is stable
// regardless of caller-supplied order.
func NewSpawnPoint(pos grid.Point, roomID int, kind SpawnType, tags []string, weight float32, distanceFromStart int) SpawnPoint {
	return SpawnPoint{
		Position:          pos,
		RoomID:            roomID,
		Type:              kind,
		Tags:              canonicalTags(tags),
		Weight:            weight,
		DistanceFromStart: distanceFromStart,
	}
}

func canonicalTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
