package ddm

import (
	"math"
	"math/rand"
)

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// minUniform replaces a zero draw so that ln(u1) stays finite.
const minUniform = math.SmallestNonzeroFloat64

// Normal draws one standard-normal variate with the Box-Muller transform,
// consuming u1 then u2 from src.
func Normal(src Source) float64 {
	u1 := src.Float64()
	u2 := src.Float64()
	if u1 <= 0 {
		u1 = minUniform
	}
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}
