package ddm_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ddmsim/internal/ddm"
)

var _ = Describe("Normal", func() {
	It("applies Box-Muller to u1 then u2", func() {
		src := &seqSource{vals: []float64{0.5, 0.5}}
		Expect(ddm.Normal(src)).To(BeNumerically("~", -math.Sqrt(2*math.Ln2), 1e-12))
		Expect(src.i).To(Equal(2))
	})

	It("keeps a zero u1 finite", func() {
		src := &seqSource{vals: []float64{0, 0}}
		z := ddm.Normal(src)
		Expect(math.IsInf(z, 0)).To(BeFalse())
		Expect(math.IsNaN(z)).To(BeFalse())
		Expect(z).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Simulate", func() {
	It("takes one step to the lower boundary at unit noise with a constant 0.5 source", func() {
		p := ddm.Params{A: 1, V: 0, Z: 0.5, S: 1, Dt: 0.01}
		trial := ddm.Simulate(p, &seqSource{vals: []float64{0.5}})

		Expect(trial.Steps).To(Equal(1))
		Expect(trial.Outcome).To(Equal(ddm.Lower))
		Expect(trial.Truncated).To(BeFalse())
		Expect(trial.DecisionTime).To(Equal(0.01))
		Expect(trial.Path).To(Equal([]float64{0.5, 0}))
	})

	It("reaches the lower boundary in 43 steps with a constant 0.5 source", func() {
		p := ddm.Params{A: 1, V: 0, Z: 0.5, S: 0.01, Dt: 0.01}
		trial := ddm.Simulate(p, &seqSource{vals: []float64{0.5}})

		Expect(trial.Steps).To(Equal(43))
		Expect(trial.Outcome).To(Equal(ddm.Lower))
		Expect(trial.Truncated).To(BeFalse())
		Expect(trial.DecisionTime).To(Equal(float64(43) * 0.01))
		Expect(trial.Path).To(HaveLen(44))
		Expect(trial.Path[0]).To(Equal(0.5))
		Expect(trial.Final()).To(Equal(0.0))

		step := 0.01 * math.Sqrt(2*math.Ln2)
		for i := 1; i < len(trial.Path)-1; i++ {
			Expect(trial.Path[i-1] - trial.Path[i]).To(BeNumerically("~", step, 1e-9))
		}
	})

	It("does not step when starting on the lower boundary", func() {
		src := &seqSource{vals: []float64{0.3}}
		trial := ddm.Simulate(ddm.Params{A: 1, V: 1, Z: 0, S: 1, Dt: 0.01}, src)

		Expect(trial.Path).To(Equal([]float64{0}))
		Expect(trial.DecisionTime).To(BeZero())
		Expect(trial.Outcome).To(Equal(ddm.Lower))
		Expect(src.i).To(BeZero())
	})

	It("does not step when starting on the upper boundary", func() {
		trial := ddm.Simulate(ddm.Params{A: 2, V: -1, Z: 1, S: 1, Dt: 0.01}, &seqSource{vals: []float64{0.3}})

		Expect(trial.Path).To(Equal([]float64{2}))
		Expect(trial.DecisionTime).To(BeZero())
		Expect(trial.Outcome).To(Equal(ddm.Upper))
	})

	It("absorbs exactly on the boundary under pure drift", func() {
		up := ddm.Simulate(ddm.Params{A: 1, V: 0.25, Z: 0.5, S: 0, Dt: 0.5}, &seqSource{vals: []float64{0.7}})
		Expect(up.Steps).To(Equal(4))
		Expect(up.Outcome).To(Equal(ddm.Upper))
		Expect(up.Path).To(Equal([]float64{0.5, 0.625, 0.75, 0.875, 1}))

		down := ddm.Simulate(ddm.Params{A: 1, V: -0.25, Z: 0.5, S: 0, Dt: 0.5}, &seqSource{vals: []float64{0.7}})
		Expect(down.Steps).To(Equal(4))
		Expect(down.Outcome).To(Equal(ddm.Lower))
		Expect(down.DecisionTime).To(Equal(2.0))
	})

	It("classifies step cap exhaustion as lower and flags it", func() {
		trial := ddm.Simulate(ddm.Params{A: 1, V: 0, Z: 0.5, S: 0, Dt: 0.01}, &seqSource{vals: []float64{0.5}})

		Expect(trial.Steps).To(Equal(ddm.MaxSteps))
		Expect(trial.Path).To(HaveLen(ddm.MaxSteps + 1))
		Expect(trial.Outcome).To(Equal(ddm.Lower))
		Expect(trial.Truncated).To(BeTrue())
		Expect(trial.DecisionTime).To(Equal(float64(ddm.MaxSteps) * 0.01))
	})

	It("clamps the recorded overshoot but not the outcome test", func() {
		// u2=0 gives cos(0)=1, a large positive jump.
		trial := ddm.Simulate(ddm.Params{A: 1, V: 0, Z: 0.5, S: 5, Dt: 0.01}, &seqSource{vals: []float64{0.1, 0}})

		Expect(trial.Steps).To(Equal(1))
		Expect(trial.Path).To(Equal([]float64{0.5, 1}))
		Expect(trial.Outcome).To(Equal(ddm.Upper))
	})

	It("holds its invariants over random trials", func() {
		src := ddm.NewSource(7)
		params := []ddm.Params{
			ddm.DefaultParams(),
			{A: 2, V: -1, Z: 0.3, S: 0.2, Dt: 0.005},
			{A: 0.5, V: 3, Z: 0.9, S: 0.05, Dt: 0.02},
			{A: 1, V: 0, Z: 0.5, S: 0.01, Dt: 0.01},
		}
		for _, p := range params {
			for i := 0; i < 50; i++ {
				trial := ddm.Simulate(p, src)
				Expect(trial.Path).NotTo(BeEmpty())
				Expect(trial.Path[0]).To(Equal(p.A * p.Z))
				Expect(trial.Steps).To(BeNumerically("<=", ddm.MaxSteps))
				Expect(trial.Path).To(HaveLen(trial.Steps + 1))
				Expect(trial.DecisionTime).To(Equal(float64(trial.Steps) * p.Dt))
				for _, x := range trial.Path {
					Expect(x).To(BeNumerically(">=", 0))
					Expect(x).To(BeNumerically("<=", p.A))
				}
				if trial.Outcome == ddm.Upper {
					Expect(trial.Final()).To(Equal(p.A))
				}
			}
		}
	})

	It("is reproducible for a fixed seed", func() {
		a := ddm.Simulate(ddm.DefaultParams(), ddm.NewSource(99))
		b := ddm.Simulate(ddm.DefaultParams(), ddm.NewSource(99))
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("Params", func() {
	DescribeTable("Validate rejects out-of-range values",
		func(p ddm.Params) {
			Expect(p.Validate()).To(MatchError(ddm.ErrParameterBounds))
		},
		Entry("zero a", ddm.Params{A: 0, Z: 0.5, S: 0.1, Dt: 0.01}),
		Entry("negative dt", ddm.Params{A: 1, Z: 0.5, S: 0.1, Dt: -0.01}),
		Entry("z above 1", ddm.Params{A: 1, Z: 1.5, S: 0.1, Dt: 0.01}),
		Entry("negative s", ddm.Params{A: 1, Z: 0.5, S: -1, Dt: 0.01}),
		Entry("NaN drift", ddm.Params{A: 1, V: math.NaN(), Z: 0.5, S: 0.1, Dt: 0.01}),
	)

	It("names the first non-finite parameter in display order", func() {
		p := ddm.Params{A: math.Inf(1), V: math.NaN(), Z: 0.5, S: math.NaN(), Dt: 0.01}
		for i := 0; i < 20; i++ {
			Expect(p.Validate()).To(MatchError(ContainSubstring(": a is not finite")))
		}

		p.A = 1
		Expect(p.Validate()).To(MatchError(ContainSubstring(": v is not finite")))
	})

	It("accepts the defaults", func() {
		Expect(ddm.DefaultParams().Validate()).To(Succeed())
	})

	It("reads and replaces by name", func() {
		p, err := ddm.DefaultParams().With("v", -2)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Get("v")).To(Equal(-2.0))

		_, err = p.With("k", 1)
		Expect(err).To(MatchError(ddm.ErrUnknownParam))
	})
})
