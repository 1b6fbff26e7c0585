// Package validate checks a finished artifact.Dungeon against the
// invariants every strategy must uphold: exactly one entrance and one
// exit, every spawn on floor, every room reachable from the entrance,
// a connected room graph, in-bounds rooms, no overlapping non-cavern
// rooms, and a matching recomputed checksum.
package validate
