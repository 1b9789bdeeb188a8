// SPDX-License-Identifier: MIT
// Package: jdmgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil               (stochastic constructors reject it)
//   • attempts    = DefaultAttempts
//   • drawBudget  = autoDrawBudget    (resolved per JDM in drawBudgetFor)
//   • logger      = discard logger

package builder

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// autoDrawBudget marks "derive the budget from the required edge count".
const autoDrawBudget int64 = -1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to implementations (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// seed is recorded when the RNG came from WithSeed.
	seed   int64
	seeded bool

	attempts   int
	drawBudget int64 // autoDrawBudget, 0 (unbounded) or an explicit cap

	logger logrus.FieldLogger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		attempts:   DefaultAttempts,
		drawBudget: autoDrawBudget,
		logger:     discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// drawBudgetFor resolves the per-attempt draw cap for a JDM with the given
// number of required edges. Zero means unbounded.
func (c builderConfig) drawBudgetFor(edges int64) int64 {
	if c.drawBudget != autoDrawBudget {
		return c.drawBudget
	}

	return DefaultDrawBudgetFactor*edges + DefaultDrawBudgetFloor
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
