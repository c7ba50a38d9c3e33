package ddm

import "math"

// Simulate runs one trial from a*z until the running position leaves (0, a)
// or MaxSteps is reached.
//
// The recorded path is clamped to [0, a] but the continuation test uses the
// unclamped position, so the two are kept in separate variables.
func Simulate(p Params, src Source) Trial {
	x := p.Start()
	path := make([]float64, 1, 64)
	path[0] = x

	t := 0
	for x > 0 && x < p.A && t < MaxSteps {
		z0 := Normal(src)
		x += p.V*p.Dt + p.S*z0
		path = append(path, clamp(x, 0, p.A))
		t++
	}

	outcome := Lower
	if x >= p.A {
		outcome = Upper
	}

	return Trial{
		Path:         path,
		DecisionTime: float64(t) * p.Dt,
		Outcome:      outcome,
		Steps:        t,
		Truncated:    t >= MaxSteps && x > 0 && x < p.A,
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}
