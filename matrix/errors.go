// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; detection sites add coordinates with %w wrapping.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the requested order is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrAllocation is returned when the requested order exceeds MaxOrder.
	ErrAllocation = errors.New("matrix: order exceeds limit")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Shift) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeValue indicates a write or shift that would leave a cell below zero.
	ErrNegativeValue = errors.New("matrix: negative cell value")
)
