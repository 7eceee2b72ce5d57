package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bernoulli returns true with probability p. p <= 0 never succeeds and
// p >= 1 always does.
func (r *RNG) Bernoulli(p float64) bool {
	return r.r.Float64() < p
}
