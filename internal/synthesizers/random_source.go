package synthesizers

import "math/rand/v2"

// RandomSource draws uniform integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
// A source is single-owner: do not share one across concurrent Synthesize calls.
type RandomSource interface {
	IntN(n int) int
}

// NewSeededSource returns a PCG-backed source; equal seeds yield equal draw sequences.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStreamSalt))
}

// NewSeed returns a fresh random seed for a session that did not ask for one.
var NewSeed = func() uint64 {
	return rand.Uint64()
}

const pcgStreamSalt = 0x9e3779b97f4a7c15
