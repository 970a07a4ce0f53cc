package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_Mulberry32Stream(t *testing.T) {
	r := NewRand(1)
	want := []uint32{2693262067, 11749833, 2265367787}
	for i, w := range want {
		if got := r.Uint32(); got != w {
			t.Fatalf("draw %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestRand_Float64Range(t *testing.T) {
	r := NewRand(SeedFromString("range"))
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestRand_SameSeedSameStream(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeedFromString(t *testing.T) {
	assert.Equal(t, Seed(0x811c9dc5), SeedFromString(""))
	assert.Equal(t, Seed(0xe40c292c), SeedFromString("a"))
	assert.Equal(t, Seed(1615493828), SeedFromString("seed-hit"))
}

func TestSeedFromInt(t *testing.T) {
	assert.Equal(t, Seed(7), SeedFromInt(7))
	assert.Equal(t, Seed(4), SeedFromInt(1<<32|5))
	assert.Equal(t, Seed(0), SeedFromInt(-1))
}

func TestDefaultSeed(t *testing.T) {
	assert.Equal(t, SeedFromString("attacker-defender"), DefaultSeed("attacker", "defender"))
	assert.Equal(t, Seed(1064228822), DefaultSeed("attacker", "defender"))
	assert.NotEqual(t, DefaultSeed("a", "b"), DefaultSeed("b", "a"))
}
