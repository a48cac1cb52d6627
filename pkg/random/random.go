// Package random provides the deterministic decision source used to resolve
// probabilistic jumps and forks.
//
// Every thread owns its own Source. A child source is seeded by one draw
// from its parent at fork time, so the whole tree of decisions is
// reproducible from the root seed while sibling streams stay statistically
// independent of each other.
package random

import "math/rand"

// Source is a logically infinite sequence of uniform draws in [0, 1).
// Each draw is consumed exactly once and never reused.
//
// A Source is not safe for concurrent use; the engine is single-goroutine
// and each thread draws only from its own source.
type Source struct {
	rng *rand.Rand
}

// New returns a Source producing the draw sequence for the given seed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next draw in [0, 1). It never blocks.
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Fork derives an independent child source, consuming one value from s as
// the child's seed.
func (s *Source) Fork() *Source {
	return New(int64(s.rng.Uint64()))
}
