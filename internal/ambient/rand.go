package ambient

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness used for spawning and perturbation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func defaultRand() Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// between returns a value uniformly drawn from [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween returns an integer uniformly drawn from [lo, hi].
func intBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
