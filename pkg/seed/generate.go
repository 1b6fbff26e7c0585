package seed

import (
	"fmt"

	"github.com/aldenfall/dungeonkernel/pkg/dungeonerr"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

const defaultVersion = "1.0.0"

// GenerateOptions customizes GenerateSeeds. Version defaults to "1.0.0"
// when empty. Timestamp, when non-zero, is used verbatim. When
// Timestamp is zero and WallClockTimestamp is true, the current wall
// clock is sampled purely for observability (it is never consulted by
// any generation decision); when both are zero/false the timestamp is
// derived deterministically from the primary seed.
type GenerateOptions struct {
	Version            string
	Timestamp          uint64
	WallClockTimestamp bool
}

// timeNowUnixNano is overridden in tests so the wall-clock path stays
// testable without depending on real time.
var timeNowUnixNano = defaultTimeNowUnixNano

// GenerateSeeds derives the four stream seeds from primary (see
// rng.DeriveStreamSeeds) and assembles a validated DungeonSeed record.
func GenerateSeeds(primary uint32, opts GenerateOptions) (*DungeonSeed, error) {
	layout, rooms, connections, details := rng.DeriveStreamSeeds(primary)

	version := opts.Version
	if version == "" {
		version = defaultVersion
	}

	timestamp := opts.Timestamp
	if timestamp == 0 {
		if opts.WallClockTimestamp {
			timestamp = timeNowUnixNano()
		} else {
			timestamp = uint64(primary) + 1
		}
	}

	s := &DungeonSeed{
		Primary:     primary,
		Layout:      layout,
		Rooms:       rooms,
		Connections: connections,
		Details:     details,
		Version:     version,
		Timestamp:   timestamp,
	}

	if err := s.Validate(); err != nil {
		return nil, dungeonerr.Wrap(dungeonerr.SeedInvalid, fmt.Sprintf("generated seed for primary %d is invalid", primary), err)
	}
	return s, nil
}
