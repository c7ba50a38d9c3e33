package config

import (
	"fmt"
	"math"

	"github.com/san-kum/ddmsim/internal/ddm"
)

// Slider is the adjustable range of one parameter in the interactive view.
type Slider struct {
	Min, Max, Step float64
}

var Sliders = map[string]Slider{
	"a":  {Min: 0.5, Max: 2.0, Step: 0.05},
	"v":  {Min: -2.0, Max: 2.0, Step: 0.05},
	"z":  {Min: 0.0, Max: 1.0, Step: 0.05},
	"s":  {Min: 0.0, Max: 0.5, Step: 0.01},
	"dt": {Min: 0.001, Max: 0.05, Step: 0.001},
}

// Adjust moves the named parameter by steps slider increments and clamps
// the result into the slider range.
func Adjust(p ddm.Params, name string, steps int) (ddm.Params, error) {
	sl, ok := Sliders[name]
	if !ok {
		return p, fmt.Errorf("%w: %s", ddm.ErrUnknownParam, name)
	}
	cur, err := p.Get(name)
	if err != nil {
		return p, err
	}
	next := cur + float64(steps)*sl.Step
	next = math.Round(next/sl.Step) * sl.Step
	next = math.Max(sl.Min, math.Min(next, sl.Max))
	return p.With(name, next)
}
