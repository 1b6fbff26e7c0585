package seed

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/aldenfall/dungeonkernel/pkg/dungeonerr"
)

const codecFieldCount = 6

// EncodeSeed renders s as a shareable code: the base64url (no padding)
// encoding of the pipe-joined decimal fields
// [primary, layout, rooms, connections, details, timestamp]. The schema
// version is not part of the payload; DecodeSeed always reconstructs
// version "1.0.0", the only version this codec currently supports.
func EncodeSeed(s *DungeonSeed) (string, error) {
	if s == nil {
		return "", dungeonerr.New(dungeonerr.SeedEncodeFailed, "seed is nil", nil)
	}
	if err := s.Validate(); err != nil {
		return "", dungeonerr.Wrap(dungeonerr.SeedEncodeFailed, "seed failed validation", err)
	}

	payload := strings.Join([]string{
		strconv.FormatUint(uint64(s.Primary), 10),
		strconv.FormatUint(uint64(s.Layout), 10),
		strconv.FormatUint(uint64(s.Rooms), 10),
		strconv.FormatUint(uint64(s.Connections), 10),
		strconv.FormatUint(uint64(s.Details), 10),
		strconv.FormatUint(s.Timestamp, 10),
	}, "|")

	return base64.RawURLEncoding.EncodeToString([]byte(payload)), nil
}

// DecodeSeed parses a code produced by EncodeSeed. It rejects strings
// outside the base64url alphabet, payloads that do not split into
// exactly six decimal integer fields, and records that fail DungeonSeed
// validation; all such failures are reported as SeedDecodeFailed.
func DecodeSeed(code string) (*DungeonSeed, error) {
	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return nil, dungeonerr.Wrap(dungeonerr.SeedDecodeFailed, "code is not valid base64url", err)
	}

	parts := strings.Split(string(raw), "|")
	if len(parts) != codecFieldCount {
		return nil, dungeonerr.New(dungeonerr.SeedDecodeFailed,
			fmt.Sprintf("expected %d pipe-joined fields, got %d", codecFieldCount, len(parts)), parts)
	}

	values := make([]uint64, codecFieldCount)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, dungeonerr.Wrap(dungeonerr.SeedDecodeFailed, fmt.Sprintf("field %d is not a decimal integer", i), err)
		}
		values[i] = v
	}

	s := &DungeonSeed{
		Primary:     uint32(values[0]),
		Layout:      uint32(values[1]),
		Rooms:       uint32(values[2]),
		Connections: uint32(values[3]),
		Details:     uint32(values[4]),
		Version:     defaultVersion,
		Timestamp:   values[5],
	}

	if err := s.Validate(); err != nil {
		return nil, dungeonerr.Wrap(dungeonerr.SeedDecodeFailed, "decoded seed failed validation", err)
	}
	return s, nil
}
