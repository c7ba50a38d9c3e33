package ddm

import (
	"fmt"
	"math"
)

const (
	// MaxSteps bounds a single trial.
	MaxSteps    = 1000
	DefaultBins = 60
)

type Params struct {
	A  float64 `json:"a" yaml:"a"`
	V  float64 `json:"v" yaml:"v"`
	Z  float64 `json:"z" yaml:"z"`
	S  float64 `json:"s" yaml:"s"`
	Dt float64 `json:"dt" yaml:"dt"`
}

func DefaultParams() Params {
	return Params{A: 1.0, V: 0.5, Z: 0.5, S: 0.1, Dt: 0.01}
}

// Start is the starting position a*z.
func (p Params) Start() float64 { return p.A * p.Z }

// Validate checks the ranges the model implies. Simulate never calls it;
// callers reject bad parameters before simulating.
func (p Params) Validate() error {
	for _, name := range ParamNames() {
		v, _ := p.Get(name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrParameterBounds, name)
		}
	}
	if p.A <= 0 {
		return fmt.Errorf("%w: a must be positive, got %f", ErrParameterBounds, p.A)
	}
	if p.Z < 0 || p.Z > 1 {
		return fmt.Errorf("%w: z must be in [0,1], got %f", ErrParameterBounds, p.Z)
	}
	if p.S < 0 {
		return fmt.Errorf("%w: s must be non-negative, got %f", ErrParameterBounds, p.S)
	}
	if p.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrParameterBounds, p.Dt)
	}
	return nil
}

func (p Params) Get(name string) (float64, error) {
	switch name {
	case "a":
		return p.A, nil
	case "v":
		return p.V, nil
	case "z":
		return p.Z, nil
	case "s":
		return p.S, nil
	case "dt":
		return p.Dt, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownParam, name)
}

// With returns a copy of p with the named parameter replaced.
func (p Params) With(name string, value float64) (Params, error) {
	switch name {
	case "a":
		p.A = value
	case "v":
		p.V = value
	case "z":
		p.Z = value
	case "s":
		p.S = value
	case "dt":
		p.Dt = value
	default:
		return p, fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return p, nil
}

// ParamNames lists parameters in display order.
func ParamNames() []string { return []string{"a", "v", "z", "s", "dt"} }

type Outcome int

const (
	Lower Outcome = iota
	Upper
)

func (o Outcome) String() string {
	if o == Upper {
		return "upper"
	}
	return "lower"
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

type Trial struct {
	Path         []float64 `json:"path"`
	DecisionTime float64   `json:"decision_time"`
	Outcome      Outcome   `json:"outcome"`
	Steps        int       `json:"steps"`
	// Truncated marks trials stopped by MaxSteps. Their outcome is Lower.
	Truncated bool `json:"truncated"`
}

func (t Trial) Final() float64 { return t.Path[len(t.Path)-1] }
