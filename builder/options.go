// SPDX-License-Identifier: MIT
// Package: jdmgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed: the seed is echoed in Result.Seed for reproduction.
//   • WithAttempts(n>1) retries only ErrRepairExhausted; budget and
//     feasibility errors are returned immediately.

package builder

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
		c.seeded = false
	}
}

// WithSeed creates a new *rand.Rand with the given seed and records the seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed, c.seeded = seed, true
	}
}

// WithAttempts sets how many times Realize restarts from an empty graph
// after ErrRepairExhausted. Panics if n < 1.
func WithAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.attempts = n
	}
}

// WithDrawBudget caps random pair draws per attempt; 0 disables the cap.
// Panics if n < 0.
func WithDrawBudget(n int64) BuilderOption {
	if n < 0 {
		panic("builder: WithDrawBudget(n<0)")
	}
	return func(c *builderConfig) {
		c.drawBudget = n
	}
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
