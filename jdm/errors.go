// SPDX-License-Identifier: MIT
// Package: jdmgraph/jdm
//
// errors.go - sentinel errors and the typed feasibility violation.
//
// Error policy:
//   - Callers branch with errors.Is(err, ErrX) or errors.As(err, *InfeasibleError).
//   - Context is attached with fmt.Errorf("...: %w", ErrX) at detection sites.

package jdm

import (
	"errors"
	"fmt"
)

// ErrInfeasible indicates the JDM violates one of the realizability conditions.
// The concrete error is always an *InfeasibleError naming the condition.
var ErrInfeasible = errors.New("jdm: not realizable as a simple graph")

// ErrInvalidCell indicates a cell with a negative degree or a negative count.
var ErrInvalidCell = errors.New("jdm: invalid cell")

// Realizability conditions checked by Check. Numbering follows the literature
// on joint-degree realizability (condition 1, symmetry, is assumed of the input).
const (
	ConditionDivisibility   = 2 // Σ_l J[k][l] divisible by k
	ConditionOffDiagonalCap = 3 // J[k][l] <= n_k·n_l for k != l
	ConditionDiagonalCap    = 4 // J[k][k] <= n_k·(n_k−1)
	ConditionDiagonalParity = 5 // J[k][k] even
)

// InfeasibleError reports the first violated condition found by Check.
// For ConditionDivisibility, L is -1 and Value is the row sum.
type InfeasibleError struct {
	Condition int
	K, L      int
	Value     int64 // offending cell value (or row sum)
	Limit     int64 // bound that was exceeded, or the divisor
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	switch e.Condition {
	case ConditionDivisibility:
		return fmt.Sprintf("jdm: condition %d violated: row %d sums to %d, not divisible by %d",
			e.Condition, e.K, e.Value, e.Limit)
	case ConditionDiagonalParity:
		return fmt.Sprintf("jdm: condition %d violated: J[%d][%d]=%d is odd",
			e.Condition, e.K, e.L, e.Value)
	default:
		return fmt.Sprintf("jdm: condition %d violated: J[%d][%d]=%d exceeds %d",
			e.Condition, e.K, e.L, e.Value, e.Limit)
	}
}

// Unwrap lets errors.Is(err, ErrInfeasible) match.
func (e *InfeasibleError) Unwrap() error {
	return ErrInfeasible
}
