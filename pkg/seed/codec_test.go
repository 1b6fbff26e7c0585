package seed

import (
	"encoding/base64"
	"testing"

	"pgregory.net/rapid"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s, err := GenerateSeeds(1, GenerateOptions{Timestamp: 1})
	if err != nil {
		t.Fatalf("GenerateSeeds: %v", err)
	}
	code, err := EncodeSeed(s)
	if err != nil {
		t.Fatalf("EncodeSeed: %v", err)
	}
	back, err := DecodeSeed(code)
	if err != nil {
		t.Fatalf("DecodeSeed: %v", err)
	}
	if *s != *back {
		t.Fatalf("round-trip mismatch: %+v vs %+v", s, back)
	}
}

func TestEncodeSeedHasNoPaddingOrUnsafeChars(t *testing.T) {
	s, err := GenerateSeeds(54321, GenerateOptions{Timestamp: 42})
	if err != nil {
		t.Fatalf("GenerateSeeds: %v", err)
	}
	code, err := EncodeSeed(s)
	if err != nil {
		t.Fatalf("EncodeSeed: %v", err)
	}
	for _, r := range code {
		if r == '=' || r == '+' || r == '/' {
			t.Fatalf("code contains disallowed character %q: %s", r, code)
		}
	}
}

func TestDecodeSeedRejectsTruncatedCode(t *testing.T) {
	s, err := GenerateSeeds(1, GenerateOptions{Timestamp: 1})
	if err != nil {
		t.Fatalf("GenerateSeeds: %v", err)
	}
	code, err := EncodeSeed(s)
	if err != nil {
		t.Fatalf("EncodeSeed: %v", err)
	}
	truncated := code[:len(code)-1]
	if _, err := DecodeSeed(truncated); err == nil {
		t.Fatal("expected DecodeSeed to fail on truncated code")
	}
}

func TestDecodeSeedRejectsGarbage(t *testing.T) {
	if _, err := DecodeSeed("not-a-valid-code!!"); err == nil {
		t.Fatal("expected DecodeSeed to reject a non-base64url string")
	}
}

func TestDecodeSeedRejectsWrongFieldCount(t *testing.T) {
	code := base64.RawURLEncoding.EncodeToString([]byte("1|2|3"))
	if _, err := DecodeSeed(code); err == nil {
		t.Fatal("expected DecodeSeed to reject a payload with the wrong field count")
	}
}

// TestRoundTripProperty exercises the codec round-trip across many
// random primary seeds using rapid's property-based generators.
func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		primary := uint32(rapid.Uint64().Draw(rt, "primary"))
		timestamp := rapid.Uint64().Draw(rt, "timestamp")
		if timestamp == 0 {
			timestamp = 1
		}

		s, err := GenerateSeeds(primary, GenerateOptions{Timestamp: timestamp})
		if err != nil {
			// A small fraction of primaries derive a zero stream seed
			// (see DeriveStreamSeeds) and are expected to fail validation.
			return
		}
		code, err := EncodeSeed(s)
		if err != nil {
			rt.Fatalf("EncodeSeed: %v", err)
		}
		back, err := DecodeSeed(code)
		if err != nil {
			rt.Fatalf("DecodeSeed: %v", err)
		}
		if *s != *back {
			rt.Fatalf("round-trip mismatch: %+v vs %+v", s, back)
		}
	})
}
