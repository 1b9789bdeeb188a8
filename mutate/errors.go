// SPDX-License-Identifier: MIT
// Package: jdmgraph/mutate
//
// errors.go - sentinel errors for the mutate package.

package mutate

import "errors"

// ErrNeedRandSource indicates neither WithSeed nor WithRand was supplied.
var ErrNeedRandSource = errors.New("mutate: rng is required")

// ErrNegativeSteps indicates a negative step count.
var ErrNegativeSteps = errors.New("mutate: negative step count")

// ErrNoSwapCandidates indicates the matrix has no two index-disjoint upper
// cells with a count of at least 2, so no swap can ever be sampled.
var ErrNoSwapCandidates = errors.New("mutate: no disjoint swap candidates")

// ErrSampleBudgetExhausted indicates one step used its whole sampling budget
// without finding a swap with positive magnitude.
var ErrSampleBudgetExhausted = errors.New("mutate: sample budget exhausted")
