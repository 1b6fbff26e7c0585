package rng

import "math/rand"

// layoutMixConstant is XORed with the primary seed to derive the layout
// stream seed; the golden-ratio-derived constant spreads bits evenly
// across the 32-bit space regardless of how "round" the primary seed is.
const layoutMixConstant uint32 = 0x9E3779B9

// streamSeedMin and streamSeedMax bound the three successive draws used
// to derive the rooms/connections/details stream seeds from a primary seed.
const (
	streamSeedMin = 1_000_000
	streamSeedMax = 9_999_999
)

// Rng is the deterministic uniform source every pass draws from. All
// methods are deterministic given the same initial seed, making dungeons
// reproducible across runs with identical inputs.
type Rng struct {
	seed   uint64
	source *rand.Rand
	draws  uint64
}

// New creates an Rng directly from seed. Use NewStreams to derive the
// four named, independently-advanceable streams from a primary seed
// instead of calling New for pipeline work.
func New(seed uint64) *Rng {
	return &Rng{seed: seed, source: rand.New(rand.NewSource(int64(seed)))}
}

// DeriveStreamSeeds computes the four named stream seeds from a primary
// seed: layout = primary XOR the golden-ratio mix constant; rooms,
// connections, details are three successive draws in
// [1_000_000, 9_999_999] from a base Rng seeded by primary, in that order.
func DeriveStreamSeeds(primary uint32) (layout, rooms, connections, details uint32) {
	layout = primary ^ layoutMixConstant
	base := New(uint64(primary))
	rooms = uint32(base.IntRange(streamSeedMin, streamSeedMax))
	connections = uint32(base.IntRange(streamSeedMin, streamSeedMax))
	details = uint32(base.IntRange(streamSeedMin, streamSeedMax))
	return layout, rooms, connections, details
}

// Seed returns the seed this Rng was constructed from.
func (r *Rng) Seed() uint64 { return r.seed }

// DrawCount returns the number of values this Rng has produced so far.
// Tests use it as a cheap state snapshot to verify pipeline stream
// discipline: a pass that does not declare a stream must leave its
// DrawCount unchanged.
func (r *Rng) DrawCount() uint64 { return r.draws }

// Next returns a pseudo-random float64 in [0.0, 1.0).
func (r *Rng) Next() float64 {
	r.draws++
	return r.source.Float64()
}

// Range returns floor(lo + Next()*(hi-lo+1)), clamped to [lo, hi].
// It panics if lo > hi.
func (r *Rng) Range(lo, hi int) int {
	if lo > hi {
		panic("rng: Range lo must be <= hi")
	}
	v := lo + int(r.Next()*float64(hi-lo+1))
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (r *Rng) Uint64() uint64 {
	r.draws++
	return r.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *Rng) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	r.draws++
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *Rng) Float64() float64 {
	r.draws++
	return r.source.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *Rng) Shuffle(n int, swap func(i, j int)) {
	r.draws++
	r.source.Shuffle(n, swap)
}

// IntRange returns a pseudo-random integer in [min, max]. It panics if
// min > max.
func (r *Rng) IntRange(min, max int) int {
	if min > max {
		panic("rng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	r.draws++
	return min + r.source.Intn(max-min+1)
}

// Float64Range returns a pseudo-random float64 in [min, max). It panics
// if min >= max.
func (r *Rng) Float64Range(min, max float64) float64 {
	if min >= max {
		panic("rng: Float64Range min must be < max")
	}
	r.draws++
	return min + r.source.Float64()*(max-min)
}

// Bool returns a pseudo-random boolean value.
func (r *Rng) Bool() bool {
	r.draws++
	return r.source.Intn(2) == 1
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if weights is
// empty or all weights are zero.
func (r *Rng) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}

	if total == 0 {
		return -1
	}

	randVal := r.Float64() * total

	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i
		}
	}

	return len(weights) - 1
}
