package physics

import "math/rand"

// Rand is the random source used for serve direction and bounce angle
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// DefaultRand returns the process-wide pseudorandom source
func DefaultRand() Rand {
	return globalRand{}
}

// pick returns one of the two signed values of magnitude
func pick(rng Rand, magnitude int) int {
	if rng.Intn(2) == 0 {
		return -magnitude
	}
	return magnitude
}
