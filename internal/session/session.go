// Package session owns the run state of an interactive simulation: the
// current parameters, the shared random source and the append-only list of
// trials.
//
// A Session is driven by a single actor and is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/ddmsim/internal/ddm"
)

var ErrEmpty = errors.New("session: no trials")

type Session struct {
	params ddm.Params
	bins   int
	src    ddm.Source
	trials []ddm.Trial
}

func New(params ddm.Params, bins int, src ddm.Source) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if bins < 1 {
		return nil, fmt.Errorf("bins must be positive, got %d", bins)
	}
	return &Session{
		params: params,
		bins:   bins,
		src:    src,
		trials: make([]ddm.Trial, 0),
	}, nil
}

func (s *Session) Params() ddm.Params { return s.params }
func (s *Session) Bins() int          { return s.bins }
func (s *Session) Len() int           { return len(s.trials) }

// SetParams replaces the parameters used by later trials. Recorded trials
// are kept.
func (s *Session) SetParams(p ddm.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.params = p
	return nil
}

// Run simulates one trial with the current parameters and appends it.
func (s *Session) Run(ctx context.Context) (ddm.Trial, error) {
	if err := ctx.Err(); err != nil {
		return ddm.Trial{}, err
	}
	trial := ddm.Simulate(s.params, s.src)
	s.trials = append(s.trials, trial)

	logrus.WithFields(logrus.Fields{
		"trial":   len(s.trials),
		"outcome": trial.Outcome,
		"rt":      trial.DecisionTime,
		"steps":   trial.Steps,
	}).Debug("trial complete")
	if trial.Truncated {
		logrus.Debugf("trial %d hit the %d step cap", len(s.trials), ddm.MaxSteps)
	}
	return trial, nil
}

// RunN runs n trials one after another, stopping early if ctx is done.
func (s *Session) RunN(ctx context.Context, n int) ([]ddm.Trial, error) {
	out := make([]ddm.Trial, 0, n)
	for i := 0; i < n; i++ {
		trial, err := s.Run(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, trial)
	}
	return out, nil
}

func (s *Session) Reset() {
	logrus.Debugf("clearing %d trials", len(s.trials))
	s.trials = s.trials[:0:0]
}

// Trials returns a copy of the recorded trials in run order.
func (s *Session) Trials() []ddm.Trial {
	out := make([]ddm.Trial, len(s.trials))
	copy(out, s.trials)
	return out
}

// Last returns up to n of the most recent trials, oldest first.
func (s *Session) Last(n int) []ddm.Trial {
	if n > len(s.trials) {
		n = len(s.trials)
	}
	if n <= 0 {
		return []ddm.Trial{}
	}
	out := make([]ddm.Trial, n)
	copy(out, s.trials[len(s.trials)-n:])
	return out
}

func (s *Session) LastTrial() (ddm.Trial, error) {
	if len(s.trials) == 0 {
		return ddm.Trial{}, ErrEmpty
	}
	return s.trials[len(s.trials)-1], nil
}

// Distribution recomputes both histograms from every recorded trial.
func (s *Session) Distribution() ddm.Distribution {
	return ddm.NewDistribution(s.trials, s.bins)
}
