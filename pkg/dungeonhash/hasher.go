package dungeonhash

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
)

// Hasher is an incremental FNV-1a 64-bit hasher (offset basis
// 14695981039346656037, prime 1099511628211, modulo 2^64 — exactly what
// hash/fnv.New64a implements), exposing the field-typed update methods
// the checksum's canonical serialization needs.
type Hasher struct {
	h hash.Hash64
}

// New creates a Hasher in its initial state.
func New() *Hasher {
	return &Hasher{h: fnv.New64a()}
}

// UpdateByte folds a single byte into the digest.
func (h *Hasher) UpdateByte(b byte) {
	h.h.Write([]byte{b})
}

// UpdateBytes folds a byte slice into the digest in order.
func (h *Hasher) UpdateBytes(b []byte) {
	h.h.Write(b)
}

// UpdateInt32 folds v into the digest as four little-endian bytes.
func (h *Hasher) UpdateInt32(v int32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	h.h.Write(buf[:])
}

// UpdateString folds s into the digest as its UTF-8 bytes.
func (h *Hasher) UpdateString(s string) {
	h.h.Write([]byte(s))
}

// Digest returns the current digest as a 16-character lowercase hex string.
func (h *Hasher) Digest() string {
	return fmt.Sprintf("%016x", h.h.Sum64())
}
