// SPDX-License-Identifier: MIT
// Package: jdmgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p, opts...).
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p. No loops, no multi-edges.
//
// Contract:
//   - n ≥ MinRandomSparseVertices (else ErrTooFewVertices).
//   - MinProbability ≤ p ≤ MaxProbability (else ErrInvalidProbability).
//   - cfg.rng must be non-nil unless p ∈ {0,1} (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: the n²/wordBits adjacency.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j>i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/jdmgraph/core"
)

// RandomSparse samples a G(n,p) comparison graph.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < MinRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			MethodRandomSparse, n, MinRandomSparseVertices, ErrTooFewVertices)
	}
	if !(p >= MinProbability && p <= MaxProbability) {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	// RNG is only required when 0 < p < 1 (true stochastic sampling).
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
	}

	// 2) Allocate the vertex set.
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomSparse, err)
	}

	// 3) Bernoulli trial per unordered pair.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var include bool
			switch {
			case p == MaxProbability:
				include = true
			case p == MinProbability:
				include = false
			default:
				include = cfg.rng.Float64() < p
			}
			if include {
				g.AddEdge(i, j)
			}
		}
	}
	cfg.logger.WithField("nodes", n).WithField("edges", g.EdgeCount()).Debug("random sparse graph sampled")

	return g, nil
}
