package seed

import (
	"regexp"

	"github.com/aldenfall/dungeonkernel/pkg/dungeonerr"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// DungeonSeed is the immutable record a generation run is derived from:
// a primary seed plus the four stream seeds it deterministically expands
// into, a schema version, and a timestamp carried for observability.
type DungeonSeed struct {
	Primary     uint32
	Layout      uint32
	Rooms       uint32
	Connections uint32
	Details     uint32
	Version     string
	Timestamp   uint64
}

// Validate checks the DungeonSeed invariants: each stream seed is
// strictly positive, Version matches major.minor.patch, and Timestamp is
// strictly positive. Primary has no lower bound to check beyond its
// uint32 type.
func (s *DungeonSeed) Validate() error {
	if s.Layout == 0 {
		return dungeonerr.New(dungeonerr.SeedInvalid, "layout stream seed must be > 0", nil)
	}
	if s.Rooms == 0 {
		return dungeonerr.New(dungeonerr.SeedInvalid, "rooms stream seed must be > 0", nil)
	}
	if s.Connections == 0 {
		return dungeonerr.New(dungeonerr.SeedInvalid, "connections stream seed must be > 0", nil)
	}
	if s.Details == 0 {
		return dungeonerr.New(dungeonerr.SeedInvalid, "details stream seed must be > 0", nil)
	}
	if !versionPattern.MatchString(s.Version) {
		return dungeonerr.New(dungeonerr.SeedInvalid, "version must match major.minor.patch", s.Version)
	}
	if s.Timestamp == 0 {
		return dungeonerr.New(dungeonerr.SeedInvalid, "timestamp must be > 0", nil)
	}
	return nil
}
