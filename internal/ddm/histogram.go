package ddm

import "math"

// Histogram bins decision times into two class-conditional count arrays of
// length bins. All trials share one scale: the largest decision time, floored
// at 1.0 so an all-zero run does not divide by zero.
func Histogram(trials []Trial, bins int) (upper, lower []int) {
	if bins < 1 {
		return []int{}, []int{}
	}
	upper = make([]int, bins)
	lower = make([]int, bins)

	maxRT := maxDecisionTime(trials)
	for _, tr := range trials {
		b := binIndex(tr.DecisionTime, maxRT, bins)
		if tr.Outcome == Upper {
			upper[b]++
		} else {
			lower[b]++
		}
	}
	return upper, lower
}

func maxDecisionTime(trials []Trial) float64 {
	maxRT := 1.0
	for _, tr := range trials {
		maxRT = math.Max(maxRT, tr.DecisionTime)
	}
	return maxRT
}

func binIndex(rt, maxRT float64, bins int) int {
	b := int(math.Floor(rt / maxRT * float64(bins)))
	if b > bins-1 {
		b = bins - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

// Distribution is a histogram together with the axis scale it was built on.
type Distribution struct {
	Upper    []int   `json:"upper"`
	Lower    []int   `json:"lower"`
	MaxRT    float64 `json:"max_rt"`
	BinWidth float64 `json:"bin_width"`
}

func NewDistribution(trials []Trial, bins int) Distribution {
	upper, lower := Histogram(trials, bins)
	maxRT := maxDecisionTime(trials)
	d := Distribution{Upper: upper, Lower: lower, MaxRT: maxRT}
	if bins > 0 {
		d.BinWidth = maxRT / float64(bins)
	}
	return d
}

func (d Distribution) Bins() int { return len(d.Upper) }

// MaxCount is the tallest bar across both classes, at least 1.
func (d Distribution) MaxCount() int {
	m := 1
	for i := range d.Upper {
		if d.Upper[i] > m {
			m = d.Upper[i]
		}
		if d.Lower[i] > m {
			m = d.Lower[i]
		}
	}
	return m
}

func (d Distribution) Total() int {
	n := 0
	for i := range d.Upper {
		n += d.Upper[i] + d.Lower[i]
	}
	return n
}

// BinEdges returns bins+1 edges from 0 to MaxRT.
func (d Distribution) BinEdges() []float64 {
	edges := make([]float64, d.Bins()+1)
	for i := range edges {
		edges[i] = float64(i) * d.BinWidth
	}
	return edges
}
