// Package random defines the randomness capability injected into statkit
// distributions. The core only needs uniform values in a caller-specified
// range; the concrete generator algorithm stays pluggable.
package random

import "golang.org/x/exp/rand"

// Source produces uniformly distributed random values. Implementations are
// not required to be safe for concurrent use; callers own synchronization,
// matching the rest of the library.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// Uint64n returns a uniform value in [0, n). Panics if n == 0.
	Uint64n(n uint64) uint64
}

// New returns a Source seeded with seed, backed by a PCG generator.
// The same seed always yields the same sequence.
func New(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewSource(seed))}
}

type pcgSource struct {
	rng *rand.Rand
}

func (s *pcgSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *pcgSource) Uint64n(n uint64) uint64 {
	return s.rng.Uint64n(n)
}

// Range returns a uniform value in [minVal, maxVal) drawn from src.
func Range(src Source, minVal, maxVal float64) float64 {
	return minVal + src.Float64()*(maxVal-minVal)
}
