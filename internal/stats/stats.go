// Package stats summarises recorded trials: choice proportions and decision
// time moments and quantiles per outcome class. It is descriptive only.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ddmsim/internal/ddm"
)

// QuantileLevels are the decision time quantiles reported per class.
var QuantileLevels = [3]float64{0.1, 0.5, 0.9}

type ClassSummary struct {
	Count     int        `json:"count" yaml:"count"`
	MeanRT    float64    `json:"mean_rt" yaml:"mean_rt"`
	StdRT     float64    `json:"std_rt" yaml:"std_rt"`
	MinRT     float64    `json:"min_rt" yaml:"min_rt"`
	MaxRT     float64    `json:"max_rt" yaml:"max_rt"`
	Quantiles [3]float64 `json:"quantiles" yaml:"quantiles"`
}

type Summary struct {
	N         int          `json:"n" yaml:"n"`
	Truncated int          `json:"truncated" yaml:"truncated"`
	PUpper    float64      `json:"p_upper" yaml:"p_upper"`
	MeanRT    float64      `json:"mean_rt" yaml:"mean_rt"`
	Upper     ClassSummary `json:"upper" yaml:"upper"`
	Lower     ClassSummary `json:"lower" yaml:"lower"`
}

func (s Summary) Class(o ddm.Outcome) ClassSummary {
	if o == ddm.Upper {
		return s.Upper
	}
	return s.Lower
}

func Summarize(trials []ddm.Trial) Summary {
	var all, upper, lower []float64
	sum := Summary{N: len(trials)}
	for _, tr := range trials {
		all = append(all, tr.DecisionTime)
		if tr.Outcome == ddm.Upper {
			upper = append(upper, tr.DecisionTime)
		} else {
			lower = append(lower, tr.DecisionTime)
		}
		if tr.Truncated {
			sum.Truncated++
		}
	}
	if len(trials) == 0 {
		return sum
	}
	sum.PUpper = float64(len(upper)) / float64(len(trials))
	sum.MeanRT = stat.Mean(all, nil)
	sum.Upper = summarizeClass(upper)
	sum.Lower = summarizeClass(lower)
	return sum
}

func summarizeClass(rts []float64) ClassSummary {
	cs := ClassSummary{Count: len(rts)}
	if len(rts) == 0 {
		return cs
	}
	sorted := append([]float64(nil), rts...)
	sort.Float64s(sorted)

	cs.MeanRT, cs.StdRT = stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		cs.StdRT = 0
	}
	cs.MinRT = floats.Min(sorted)
	cs.MaxRT = floats.Max(sorted)
	for i, q := range QuantileLevels {
		cs.Quantiles[i] = stat.Quantile(q, stat.Empirical, sorted, nil)
	}
	return cs
}
