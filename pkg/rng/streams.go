package rng

import "fmt"

// StreamName identifies one of the four independently-advanceable RNG
// streams a pipeline context exposes to passes.
type StreamName string

// The named streams a pipeline context can hold. Passes declare a subset
// of these in their required-streams set; the runner rejects a pass whose
// declared streams are not all present. Draws from an undeclared stream
// are not detected.
const (
	StreamLayout      StreamName = "layout"
	StreamRooms       StreamName = "rooms"
	StreamConnections StreamName = "connections"
	StreamDetails     StreamName = "details"
)

// Streams holds the four named RNG streams for one pipeline run. Streams
// are exclusively owned by the pipeline context and mutably borrowed by
// at most one pass at a time.
type Streams struct {
	streams map[StreamName]*Rng
}

// NewStreams wraps four already-derived stream seeds (see
// DeriveStreamSeeds) as independent Rng instances.
func NewStreams(layout, rooms, connections, details uint32) *Streams {
	return &Streams{
		streams: map[StreamName]*Rng{
			StreamLayout:      New(uint64(layout)),
			StreamRooms:       New(uint64(rooms)),
			StreamConnections: New(uint64(connections)),
			StreamDetails:     New(uint64(details)),
		},
	}
}

// Get returns the named stream's Rng. It panics if name is not one of
// the four recognized stream names; callers should check Has first when
// the name did not come from a compile-time constant.
func (s *Streams) Get(name StreamName) *Rng {
	r, ok := s.streams[name]
	if !ok {
		panic(fmt.Sprintf("rng: unknown stream %q", name))
	}
	return r
}

// Has reports whether name is a recognized, present stream.
func (s *Streams) Has(name StreamName) bool {
	_, ok := s.streams[name]
	return ok
}

// Names returns the recognized stream names in declaration order.
func (s *Streams) Names() []StreamName {
	return []StreamName{StreamLayout, StreamRooms, StreamConnections, StreamDetails}
}
