package seed

import "github.com/aldenfall/dungeonkernel/pkg/dungeonerr"

// NormalizeSeed turns a caller-supplied value into a uint32 primary
// seed. An empty string normalizes to 0. A non-empty string normalizes
// to a deterministic djb2 hash of its bytes. A non-negative integer
// passes through unchanged. A negative integer fails.
func NormalizeSeed(v any) (uint32, error) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return 0, nil
		}
		return djb2(t), nil
	case int:
		return normalizeInt(int64(t))
	case int32:
		return normalizeInt(int64(t))
	case int64:
		return normalizeInt(t)
	case uint32:
		return t, nil
	case uint64:
		return uint32(t), nil
	default:
		return 0, dungeonerr.New(dungeonerr.SeedInvalid, "unsupported seed value type", v)
	}
}

func normalizeInt(v int64) (uint32, error) {
	if v < 0 {
		return 0, dungeonerr.New(dungeonerr.SeedInvalid, "negative seed value", v)
	}
	return uint32(v), nil
}

// djb2 computes Dan Bernstein's string hash (hash = hash*33 + c,
// starting at 5381) truncated to 32 bits by the natural overflow of
// uint32 arithmetic.
func djb2(s string) uint32 {
	var hash uint32 = 5381
	for i := 0; i < len(s); i++ {
		hash = hash*33 + uint32(s[i])
	}
	return hash
}
