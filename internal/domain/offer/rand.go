package offer

import "math/rand/v2"

// Rand is the source of randomness for the generator and the report stubs.
// The original drew from an unseeded global; an injected source keeps the
// same behavior in production while letting tests pin every draw.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

type systemRand struct{}

// NewSystemRand returns the production source backed by math/rand/v2.
func NewSystemRand() Rand {
	return systemRand{}
}

func (systemRand) IntN(n int) int   { return rand.IntN(n) }
func (systemRand) Float64() float64 { return rand.Float64() }
