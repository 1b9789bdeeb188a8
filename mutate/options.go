// SPDX-License-Identifier: MIT
// Package: jdmgraph/mutate
//
// options.go - functional options and the resolved config.
//
// Option constructors panic on meaningless input; Run and Step never panic.

package mutate

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

const (
	methodRun  = "Run"
	methodStep = "Step"
)

// DefaultSampleBudget is the number of candidate pairs one step may draw
// before giving up.
const DefaultSampleBudget int64 = 10_000_000

// Option customizes a mutation run.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	seed         int64
	seeded       bool
	sampleBudget int64 // 0 = unbounded
	logger       logrus.FieldLogger
}

func newConfig(opts ...Option) config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	cfg := config{
		sampleBudget: DefaultSampleBudget,
		logger:       l,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a fresh *rand.Rand and records the seed in Stats.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed, c.seeded = seed, true
	}
}

// WithRand uses r for every random choice. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mutate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seeded = false
	}
}

// WithSampleBudget caps candidate draws per step; 0 disables the cap.
// Panics if n < 0.
func WithSampleBudget(n int64) Option {
	if n < 0 {
		panic("mutate: WithSampleBudget(n<0)")
	}
	return func(c *config) {
		c.sampleBudget = n
	}
}

// WithLogger routes per-run diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("mutate: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
