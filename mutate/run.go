// SPDX-License-Identifier: MIT
// Package: jdmgraph/mutate
//
// run.go - Run(m, steps, opts...): repeated swaps on one matrix.

package mutate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jdmgraph/matrix"
)

// Stats summarizes a completed run.
type Stats struct {
	Steps   int
	Samples int64 // candidate pairs drawn over all steps
	Moved   int64 // total magnitude moved

	Seed   int64
	Seeded bool
}

// Run applies steps swaps to m in place. Zero steps leave m untouched.
// Candidates are checked once up front; a later step that cannot find a
// swap stops with ErrSampleBudgetExhausted and leaves the earlier steps applied.
func Run(m *matrix.Symmetric, steps int, opts ...Option) (*Stats, error) {
	cfg := newConfig(opts...)
	if steps < 0 {
		return nil, fmt.Errorf("%s: steps=%d: %w", methodRun, steps, ErrNegativeSteps)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNeedRandSource)
	}
	st := &Stats{Seed: cfg.seed, Seeded: cfg.seeded}
	if steps == 0 {
		return st, nil
	}
	if !hasCandidates(m) {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNoSwapCandidates)
	}

	for s := 0; s < steps; s++ {
		sw, err := step(m, cfg.rng, cfg.sampleBudget)
		if err != nil {
			return st, fmt.Errorf("%s: step %d: %w", methodRun, s+1, err)
		}
		st.Steps++
		st.Samples += sw.Samples
		st.Moved += sw.Magnitude
	}

	log := cfg.logger.WithFields(logrus.Fields{
		"steps":   st.Steps,
		"samples": st.Samples,
		"moved":   st.Moved,
	})
	if cfg.seeded {
		log = log.WithField("seed", cfg.seed)
	}
	log.Debug("mutation finished")

	return st, nil
}
