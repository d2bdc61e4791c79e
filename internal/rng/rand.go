// Package rng provides a small seeded PRNG so simulations can be replayed.
package rng

import "math"

// Rand is an xorshift64* generator. The zero value is not usable; use New.
// A Rand is not safe for concurrent use; each game owns its own.
type Rand struct {
	s uint64
}

// New returns a generator seeded with seed. The seed is run through
// splitmix64 so small seeds still produce well-mixed streams.
func New(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &Rand{s: s}
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Uint64 returns the next 64 random bits.
func (r *Rand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 0x2545F4914F6CDD1D
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Angle returns a random angle in radians in [0, 2π).
func (r *Rand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}
