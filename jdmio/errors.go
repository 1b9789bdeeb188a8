// SPDX-License-Identifier: MIT
// Package: jdmgraph/jdmio
//
// errors.go - sentinel errors and the per-line diagnostic.

package jdmio

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess indicates a file could not be opened, read, written or renamed.
	ErrFileAccess = errors.New("jdmio: file access")

	// ErrSyntax indicates a line that does not have the expected field count
	// or holds a non-integer field.
	ErrSyntax = errors.New("jdmio: malformed line")

	// ErrNegative indicates a negative degree, count or vertex id.
	ErrNegative = errors.New("jdmio: negative value")

	// ErrSelfLoop indicates an edge-list line with u == v.
	ErrSelfLoop = errors.New("jdmio: self-loop")
)

// LineError describes one skipped input line.
type LineError struct {
	Line int    // 1-based line number
	Text string // trimmed line content
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadReport summarizes a tolerant read.
type ReadReport struct {
	Lines   int // lines scanned, blanks included
	Records int // records accepted
	Skipped []*LineError
}
