// Package dungeonhash provides the incremental FNV-1a 64-bit hasher used
// to compute canonical checksums over a finalized dungeon artifact:
// terrain bytes, room/connection/spawn fields, hashed in a fixed field
// order so the same semantic content always yields the same digest.
package dungeonhash
