package engine

import "hash/fnv"

// Seed fixes the entire random stream of one battle.
type Seed uint32

// SeedFromString reduces a string seed to 32 bits with FNV-1a.
func SeedFromString(s string) Seed {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return Seed(h.Sum32())
}

// SeedFromInt folds a 64-bit integer seed into 32 bits.
func SeedFromInt(n int64) Seed {
	u := uint64(n)
	return Seed(uint32(u) ^ uint32(u>>32))
}

// DefaultSeed is the seed used when a caller does not provide one.
func DefaultSeed(leftID, rightID string) Seed {
	return SeedFromString(leftID + "-" + rightID)
}

// Source is the randomness consumed by the resolver. Values are in [0,1).
type Source interface {
	Float64() float64
}

// Rand is a mulberry32 generator. It is not safe for concurrent use; every
// battle owns its own instance.
type Rand struct {
	state uint32
}

// NewRand returns a generator positioned at the start of the seed's stream.
func NewRand(seed Seed) *Rand {
	return &Rand{state: uint32(seed)}
}

// Uint32 advances the generator and returns the next 32-bit value.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	return z ^ z>>14
}

// Float64 returns the next value normalized to [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296.0
}
