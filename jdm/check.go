// SPDX-License-Identifier: MIT
// Package: jdmgraph/jdm
//
// check.go - realizability conditions for a JDM.
//
// Contract:
//   - Check visits rows, then cells, in ascending order and reports the FIRST
//     violation, so the cited condition is stable for a given input.
//   - Degree 0 is special-cased: its class size is the raw row sum.
//
// Complexity: O(C log C) for C stored cells (sorting dominates).
// Capacities saturate at math.MaxInt64 instead of wrapping.

package jdm

import (
	"fmt"
	"math"
)

// ClassSizes returns n_k for every row degree k, or an *InfeasibleError for
// condition 2 when a row sum is not an exact multiple of k.
func ClassSizes(j *JDM) (map[int]int64, error) {
	sums := make(map[int]int64)
	for _, p := range j.pairs() {
		if p.K < 0 || p.L < 0 {
			return nil, fmt.Errorf("ClassSizes: pair (%d,%d): negative degree: %w", p.K, p.L, ErrInvalidCell)
		}
		v := j.cells[p]
		if v < 0 {
			return nil, fmt.Errorf("ClassSizes: J[%d][%d]=%d: negative count: %w", p.K, p.L, v, ErrInvalidCell)
		}
		if v > math.MaxInt64-sums[p.K] {
			return nil, fmt.Errorf("ClassSizes: row %d: sum overflows int64: %w", p.K, ErrInvalidCell)
		}
		sums[p.K] += v
	}

	nk := make(map[int]int64, len(sums))
	for _, k := range j.Degrees() {
		s := sums[k]
		if k == 0 {
			nk[k] = s
			continue
		}
		if s%int64(k) != 0 {
			return nil, &InfeasibleError{Condition: ConditionDivisibility, K: k, L: -1, Value: s, Limit: int64(k)}
		}
		nk[k] = s / int64(k)
	}

	return nk, nil
}

// Check validates j against conditions 2–5. A nil result means every
// necessary condition holds; it does not promise the greedy realizer succeeds.
func Check(j *JDM) error {
	nk, err := ClassSizes(j)
	if err != nil {
		return err
	}

	for _, p := range j.pairs() {
		v := j.cells[p]
		nK, nL := nk[p.K], nk[p.L] // absent row → class of size 0
		if p.K != p.L {
			if limit := capacity(nK, nL); v > limit {
				return &InfeasibleError{Condition: ConditionOffDiagonalCap, K: p.K, L: p.L, Value: v, Limit: limit}
			}
			continue
		}
		if limit := capacity(nK, nK-1); v > limit {
			return &InfeasibleError{Condition: ConditionDiagonalCap, K: p.K, L: p.L, Value: v, Limit: limit}
		}
		if v%2 != 0 {
			return &InfeasibleError{Condition: ConditionDiagonalParity, K: p.K, L: p.L, Value: v}
		}
	}

	return nil
}

// capacity returns a·b, saturating at math.MaxInt64. Class sizes are never
// negative; a = 0 covers the empty diagonal case b = -1.
func capacity(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}

	return a * b
}
