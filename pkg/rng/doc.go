// Package rng provides deterministic random number generation for the
// dungeon generation kernel.
//
// # Overview
//
// Rng is the splittable uniform source every pass draws from. The Streams
// manager derives four independent, named streams (layout, rooms,
// connections, details) from a single primary seed so that pipeline
// phases cannot interfere with one another's sequences while remaining
// fully reproducible.
//
// # Stream Derivation
//
// Given a primary seed:
//
//	layout      = abs(primary XOR 0x9E3779B9)
//	rooms, connections, details = three successive draws from a base
//	                              Rng seeded by primary, each in
//	                              [1_000_000, 9_999_999]
//
// This ensures:
//  1. Same primary seed always produces the same four stream seeds (determinism)
//  2. Each stream advances independently once assigned to a pass (isolation)
//  3. A pass that does not declare a stream in its required set must not
//     observe or mutate that stream's sequence (pipeline stream discipline)
//
// # Usage
//
//	streams := rng.NewStreams(layout, rooms, connections, details)
//	wallRoll := streams.Get(rng.StreamLayout).Float64()
//	roomSeed := streams.Get(rng.StreamRooms).Uint64()
//
// # Thread Safety
//
// Rng instances are NOT thread-safe. A pipeline run owns its Streams
// exclusively; concurrent runs must use distinct Streams instances.
package rng
