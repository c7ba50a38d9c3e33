package stats_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ddmsim/internal/ddm"
	"github.com/san-kum/ddmsim/internal/stats"
)

func at(rt float64, o ddm.Outcome) ddm.Trial {
	return ddm.Trial{Path: []float64{0}, DecisionTime: rt, Outcome: o}
}

var _ = Describe("Summarize", func() {
	It("is zero for no trials", func() {
		s := stats.Summarize(nil)
		Expect(s.N).To(BeZero())
		Expect(s.PUpper).To(BeZero())
		Expect(s.Upper.Count).To(BeZero())
	})

	It("splits moments by class", func() {
		trials := []ddm.Trial{
			at(0.2, ddm.Upper), at(0.4, ddm.Upper), at(0.6, ddm.Upper),
			at(1.0, ddm.Lower),
		}
		s := stats.Summarize(trials)

		Expect(s.N).To(Equal(4))
		Expect(s.PUpper).To(Equal(0.75))
		Expect(s.MeanRT).To(BeNumerically("~", 0.55, 1e-12))

		Expect(s.Upper.Count).To(Equal(3))
		Expect(s.Upper.MeanRT).To(BeNumerically("~", 0.4, 1e-12))
		Expect(s.Upper.StdRT).To(BeNumerically("~", 0.2, 1e-12))
		Expect(s.Upper.MinRT).To(Equal(0.2))
		Expect(s.Upper.MaxRT).To(Equal(0.6))
		Expect(s.Upper.Quantiles[1]).To(Equal(0.4))

		Expect(s.Class(ddm.Lower).Count).To(Equal(1))
		Expect(s.Lower.StdRT).To(BeZero())
		Expect(s.Lower.Quantiles).To(Equal([3]float64{1, 1, 1}))
	})

	It("counts step cap trials", func() {
		tr := at(10, ddm.Lower)
		tr.Truncated = true
		s := stats.Summarize([]ddm.Trial{tr, at(0.1, ddm.Upper)})
		Expect(s.Truncated).To(Equal(1))
	})

	It("favours the upper boundary under positive drift", func() {
		src := ddm.NewSource(11)
		p := ddm.Params{A: 1, V: 4, Z: 0.5, S: 0.1, Dt: 0.01}
		trials := make([]ddm.Trial, 200)
		for i := range trials {
			trials[i] = ddm.Simulate(p, src)
		}
		Expect(stats.Summarize(trials).PUpper).To(BeNumerically(">", 0.85))
	})
})
