// SPDX-License-Identifier: MIT
// Package: jdmgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with "%s: ...: %w" and the method tag.
//   • Algorithms MUST NOT panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrRepairExhausted indicates the neighbor switch found no partner with free
// stubs or no neighbor to rewire. It is a limitation of the greedy stub
// matching, not a proof that the JDM is unrealizable; retry with another seed
// or a larger WithAttempts.
var ErrRepairExhausted = errors.New("builder: neighbor switch exhausted")

// ErrDrawBudgetExhausted indicates the pair-draw loop used its whole budget
// before every JDM cell was satisfied.
var ErrDrawBudgetExhausted = errors.New("builder: draw budget exhausted")

// ErrInexactRealization indicates the constructed graph failed the final
// exactness check (leftover stubs or a JDM mismatch). The graph is discarded.
var ErrInexactRealization = errors.New("builder: realization does not match target")
