// Package sweep runs a parameter sweep: the same number of trials at evenly
// spaced values of one parameter, summarised per value.
package sweep

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/ddmsim/internal/ddm"
	"github.com/san-kum/ddmsim/internal/stats"
)

var ErrUnknownParam = ddm.ErrUnknownParam

type Sweep struct {
	Param    string
	Min, Max float64
	Steps    int
	Trials   int
}

type Point struct {
	Value   float64       `json:"value"`
	Summary stats.Summary `json:"summary"`
}

func (s Sweep) Values() []float64 {
	if s.Steps <= 1 {
		return []float64{s.Min}
	}
	vals := make([]float64, s.Steps)
	for i := range vals {
		vals[i] = s.Min + (s.Max-s.Min)*float64(i)/float64(s.Steps-1)
	}
	return vals
}

func (s Sweep) validate() error {
	if _, err := ddm.DefaultParams().Get(s.Param); err != nil {
		return err
	}
	if s.Steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", s.Steps)
	}
	if s.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", s.Trials)
	}
	return nil
}

// Run simulates every sweep value in order, sharing src across all trials.
func (s Sweep) Run(ctx context.Context, base ddm.Params, src ddm.Source) ([]Point, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	points := make([]Point, 0, s.Steps)
	for _, v := range s.Values() {
		p, err := base.With(s.Param, v)
		if err != nil {
			return points, err
		}
		if err := p.Validate(); err != nil {
			return points, fmt.Errorf("%s=%g: %w", s.Param, v, err)
		}

		trials := make([]ddm.Trial, 0, s.Trials)
		for i := 0; i < s.Trials; i++ {
			if err := ctx.Err(); err != nil {
				return points, err
			}
			trials = append(trials, ddm.Simulate(p, src))
		}

		sum := stats.Summarize(trials)
		logrus.Debugf("sweep %s=%.4f p_upper=%.3f mean_rt=%.3f", s.Param, v, sum.PUpper, sum.MeanRT)
		points = append(points, Point{Value: v, Summary: sum})
	}
	return points, nil
}

// IsParamError reports whether err came from an unknown sweep parameter.
func IsParamError(err error) bool { return errors.Is(err, ErrUnknownParam) }
