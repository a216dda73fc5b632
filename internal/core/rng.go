package core

import "math/rand/v2"

// Rand is the subset of math/rand/v2 the simulations draw from. Keeping it
// an interface lets tests substitute a scripted source for exact rolls.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a deterministic PCG-backed Rand for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
