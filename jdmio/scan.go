// SPDX-License-Identifier: MIT
// Package: jdmio
//
// scan.go - shared line scanner for the comma-separated integer formats.

package jdmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// scanRecords calls accept for every non-blank line split into want
// non-negative integers. Lines failing to parse, or rejected by accept, are
// logged and recorded in the report.
func scanRecords(r io.Reader, want int, kind string, log logrus.FieldLogger, accept func(fields []int64) error) (*ReadReport, error) {
	rep := &ReadReport{}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLine)
	fields := make([]int64, want)
	for s.Scan() {
		rep.Lines++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		err := parseFields(text, fields)
		if err == nil {
			err = accept(fields)
		}
		if err != nil {
			le := &LineError{Line: rep.Lines, Text: text, Err: err}
			rep.Skipped = append(rep.Skipped, le)
			log.WithField("line", rep.Lines).WithError(err).Warnf("skipping invalid %s line %q", kind, text)
			continue
		}
		rep.Records++
	}
	if err := s.Err(); err != nil {
		return rep, accessErrorf(err, "read %s after line %d", kind, rep.Lines)
	}

	return rep, nil
}

// parseFields splits text on commas into exactly len(out) non-negative integers.
func parseFields(text string, out []int64) error {
	parts := strings.Split(text, ",")
	if len(parts) != len(out) {
		return fmt.Errorf("%d field(s), want %d: %w", len(parts), len(out), ErrSyntax)
	}
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return fmt.Errorf("field %d: %w", i+1, ErrSyntax)
		}
		if v < 0 {
			return fmt.Errorf("field %d = %d: %w", i+1, v, ErrNegative)
		}
		out[i] = v
	}

	return nil
}

// accessErrorf keeps both ErrFileAccess and the underlying OS error in the
// chain, so errors.Is matches either.
func accessErrorf(err error, format string, args ...interface{}) error {
	return errors.WithStack(fmt.Errorf("%w: %s: %w", ErrFileAccess, fmt.Sprintf(format, args...), err))
}
