// SPDX-License-Identifier: MIT
// Package: jdmio
//
// jdmfile.go - "k,l,value" JDM records.

package jdmio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jdmgraph/jdm"
)

// ReadJDM parses JDM records in line order. Repeated (k,l) pairs are all
// returned; jdm.FromCells resolves them last-wins.
func ReadJDM(r io.Reader, log logrus.FieldLogger) ([]jdm.Cell, *ReadReport, error) {
	var cells []jdm.Cell
	rep, err := scanRecords(r, 3, "JDM", log, func(f []int64) error {
		if f[0] > math.MaxInt32 || f[1] > math.MaxInt32 {
			return fmt.Errorf("degree above %d: %w", math.MaxInt32, ErrSyntax)
		}
		cells = append(cells, jdm.Cell{K: int(f[0]), L: int(f[1]), Value: f[2]})
		return nil
	})

	return cells, rep, err
}

// ReadJDMFile opens path and reads it with ReadJDM.
func ReadJDMFile(path string, log logrus.FieldLogger) ([]jdm.Cell, *ReadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, accessErrorf(err, "open JDM file %s", path)
	}
	defer f.Close()

	cells, rep, err := ReadJDM(f, log)
	if err != nil {
		return nil, rep, errors.WithMessage(err, path)
	}
	log.WithFields(logrus.Fields{"file": path, "records": rep.Records, "skipped": len(rep.Skipped)}).Debug("JDM loaded")

	return cells, rep, nil
}

// WriteJDM writes one "k,l,value" line per cell, in order.
func WriteJDM(w io.Writer, cells []jdm.Cell) error {
	bw := bufio.NewWriter(w)
	for _, c := range cells {
		if _, err := fmt.Fprintf(bw, "%d,%d,%d\n", c.K, c.L, c.Value); err != nil {
			return accessErrorf(err, "write JDM record")
		}
	}
	if err := bw.Flush(); err != nil {
		return accessErrorf(err, "flush JDM")
	}

	return nil
}
