// SPDX-License-Identifier: MIT
// Package: jdmio
//
// atomic.go - all-or-nothing output files.

package jdmio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFileAtomic stages write's output in a temporary file in path's
// directory and renames it to path once write and close succeed. On any
// failure the temporary file is removed and path is left untouched.
func WriteFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return accessErrorf(err, "create temp for %s", path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return accessErrorf(err, "chmod %s", tmp.Name())
	}
	if err = write(tmp); err != nil {
		return errors.WithMessagef(err, "write %s", path)
	}
	if err = tmp.Close(); err != nil {
		return accessErrorf(err, "close %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return accessErrorf(err, "rename %s to %s", tmp.Name(), path)
	}

	return nil
}
