package artifact

import (
	"fmt"
	"sort"

	"github.com/aldenfall/dungeonkernel/pkg/dungeonhash"
)

// ChecksumVersion is the current checksum payload format version, hashed
// as the first field and embedded as the "v{N}" prefix of the checksum
// string. Two checksums are only comparable when their version prefixes
// match.
const ChecksumVersion int32 = 1

// ComputeChecksum hashes, in order: the version, the raw terrain bytes,
// each room's (x,y,width,height), each connection's (fromRoomId,
// toRoomId), and each spawn's (position, roomId, type, sorted tags). It
// returns "v{VERSION}:{16 lowercase hex chars}".
func ComputeChecksum(terrain []byte, rooms []Room, connections []Connection, spawns []SpawnPoint) string {
	h := dungeonhash.New()

	h.UpdateInt32(ChecksumVersion)
	h.UpdateBytes(terrain)

	for _, r := range rooms {
		h.UpdateInt32(int32(r.X))
		h.UpdateInt32(int32(r.Y))
		h.UpdateInt32(int32(r.Width))
		h.UpdateInt32(int32(r.Height))
	}

	for _, c := range connections {
		h.UpdateInt32(int32(c.FromRoomID))
		h.UpdateInt32(int32(c.ToRoomID))
	}

	for _, s := range spawns {
		h.UpdateInt32(int32(s.Position.X))
		h.UpdateInt32(int32(s.Position.Y))
		h.UpdateInt32(int32(s.RoomID))
		h.UpdateString(string(s.Type))
		tags := append([]string(nil), s.Tags...)
		sort.Strings(tags)
		for _, t := range tags {
			h.UpdateString(t)
		}
	}

	return fmt.Sprintf("v%d:%s", ChecksumVersion, h.Digest())
}
