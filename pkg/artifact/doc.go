// Package artifact defines the canonical records passed between pipeline
// passes and returned to callers: Room, Connection, SpawnPoint, the
// mutable DungeonState workbench, and the terminal immutable Dungeon.
//
// These types are intentionally free of behavior beyond small invariant
// helpers (NewRoom, checksum inputs) so that cellular, bsp, dungeon, and
// validate can all depend on them without importing each other.
package artifact
