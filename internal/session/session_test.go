package session_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ddmsim/internal/ddm"
	"github.com/san-kum/ddmsim/internal/session"
)

var _ = Describe("Session", func() {
	var (
		s   *session.Session
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		s, err = session.New(ddm.DefaultParams(), ddm.DefaultBins, ddm.NewSource(1))
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts empty", func() {
		Expect(s.Len()).To(BeZero())
		_, err := s.LastTrial()
		Expect(err).To(MatchError(session.ErrEmpty))
		d := s.Distribution()
		Expect(d.Total()).To(BeZero())
		Expect(d.Upper).To(HaveLen(ddm.DefaultBins))
	})

	It("appends one trial per run in order", func() {
		first, err := s.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		second, err := s.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Trials()).To(Equal([]ddm.Trial{first, second}))
		Expect(s.LastTrial()).To(Equal(second))
	})

	It("recomputes the distribution over every trial", func() {
		_, err := s.RunN(ctx, 40)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Distribution().Total()).To(Equal(40))
	})

	It("clears on reset", func() {
		_, err := s.RunN(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		s.Reset()
		Expect(s.Len()).To(BeZero())
		Expect(s.Distribution().Total()).To(BeZero())
	})

	It("hands out snapshots", func() {
		_, err := s.RunN(ctx, 3)
		Expect(err).NotTo(HaveOccurred())
		snap := s.Trials()
		snap[0].Steps = -1
		Expect(s.Trials()[0].Steps).NotTo(Equal(-1))
	})

	It("returns the most recent trials oldest first", func() {
		all, err := s.RunN(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Last(2)).To(Equal(all[3:]))
		Expect(s.Last(10)).To(HaveLen(5))
		Expect(s.Last(0)).To(BeEmpty())
	})

	It("stops when the context is cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		done, err := s.RunN(cctx, 3)
		Expect(err).To(MatchError(context.Canceled))
		Expect(done).To(BeEmpty())
		Expect(s.Len()).To(BeZero())
	})

	It("rejects invalid parameters at the boundary", func() {
		err := s.SetParams(ddm.Params{A: -1, Z: 0.5, Dt: 0.01})
		Expect(err).To(MatchError(ddm.ErrParameterBounds))
		Expect(s.Params()).To(Equal(ddm.DefaultParams()))

		_, err = session.New(ddm.Params{A: 1, Z: 0.5, Dt: 0}, 60, ddm.NewSource(1))
		Expect(err).To(MatchError(ddm.ErrParameterBounds))

		_, err = session.New(ddm.DefaultParams(), 0, ddm.NewSource(1))
		Expect(err).To(HaveOccurred())
	})

	It("keeps recorded trials when parameters change", func() {
		_, err := s.RunN(ctx, 2)
		Expect(err).NotTo(HaveOccurred())
		p := ddm.DefaultParams()
		p.V = -1
		Expect(s.SetParams(p)).To(Succeed())
		Expect(s.Len()).To(Equal(2))
		Expect(s.Params().V).To(Equal(-1.0))
	})
})
