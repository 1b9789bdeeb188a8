// SPDX-License-Identifier: MIT

// Package matrix - Symmetric storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold the aggregate JDM J[d1][d2] for degrees 0..n-1 in one flat buffer
//     (offset = i*n + j).
//   - Guarantee symmetry: Set and Shift always write both mirror cells.
//   - Keep counts non-negative: writes that would go below zero are rejected.
//
// AI-Hints:
//   - Use FromCells to load records in file order (a repeated pair keeps the
//     last value, mirror included), and Project to write them back in the same
//     order. Cells that became non-zero without a record are appended.
//   - Orders above MaxOrder fail with ErrAllocation before anything is allocated.
//   - Capacity/Headroom are recomputed from the live matrix on every call.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jdmgraph/jdm"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxShift   = "Shift"
	ctxRowSum  = "RowSum"
	ctxProject = "Project"
)

// symErrorf wraps an error with a uniform Symmetric context and coordinates.
func symErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Symmetric.%s(%d,%d): %w", method, row, col, err)
}

// MaxOrder bounds n. The dense buffer holds n² int64 counts, 128 MiB at the limit.
const MaxOrder = 1 << 12

// Symmetric is a dense n×n symmetric matrix of non-negative counts.
type Symmetric struct {
	n    int
	data []int64 // len == n*n
}

// NewSymmetric creates an n×n zero matrix.
// Complexity: O(n²).
func NewSymmetric(n int) (*Symmetric, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewSymmetric(%d): %w", n, ErrBadShape)
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("NewSymmetric(%d): limit %d: %w", n, MaxOrder, ErrAllocation)
	}

	return &Symmetric{n: n, data: make([]int64, n*n)}, nil
}

// FromCells sizes the matrix to the largest degree seen and stores every
// record in order, writing both J[k][l] and J[l][k].
func FromCells(cells []jdm.Cell) (*Symmetric, error) {
	maxd := -1
	for _, c := range cells {
		if c.K < 0 || c.L < 0 {
			return nil, symErrorf(ctxSet, c.K, c.L, ErrOutOfRange)
		}
		if c.K >= MaxOrder || c.L >= MaxOrder {
			return nil, fmt.Errorf("FromCells: degree pair (%d,%d): limit %d: %w", c.K, c.L, MaxOrder, ErrAllocation)
		}
		if c.K > maxd {
			maxd = c.K
		}
		if c.L > maxd {
			maxd = c.L
		}
	}
	m, err := NewSymmetric(maxd + 1)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err = m.Set(c.K, c.L, c.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromJDM loads j in ascending (K,L) order.
func FromJDM(j *jdm.JDM) (*Symmetric, error) {
	return FromCells(j.Cells())
}

// Order returns n, one more than the largest degree represented.
func (m *Symmetric) Order() int {
	return m.n
}

func (m *Symmetric) inRange(i, j int) bool {
	return i >= 0 && i < m.n && j >= 0 && j < m.n
}

// At returns J[i][j].
// Complexity: O(1).
func (m *Symmetric) At(i, j int) (int64, error) {
	if !m.inRange(i, j) {
		return 0, symErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Set assigns v to J[i][j] and J[j][i].
// Complexity: O(1).
func (m *Symmetric) Set(i, j int, v int64) error {
	if !m.inRange(i, j) {
		return symErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if v < 0 {
		return symErrorf(ctxSet, i, j, ErrNegativeValue)
	}
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v

	return nil
}

// Shift adds delta to J[i][j] and J[j][i]; on the diagonal it is applied once.
// The matrix is unchanged when the result would be negative.
// Complexity: O(1).
func (m *Symmetric) Shift(i, j int, delta int64) error {
	if !m.inRange(i, j) {
		return symErrorf(ctxShift, i, j, ErrOutOfRange)
	}
	v := m.data[i*m.n+j] + delta
	if v < 0 {
		return symErrorf(ctxShift, i, j, ErrNegativeValue)
	}
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v

	return nil
}

// RowSum returns Σ_j J[i][j], the stub total of degree class i.
// Complexity: O(n).
func (m *Symmetric) RowSum(i int) (int64, error) {
	if i < 0 || i >= m.n {
		return 0, symErrorf(ctxRowSum, i, 0, ErrOutOfRange)
	}
	var s int64
	for _, v := range m.data[i*m.n : (i+1)*m.n] {
		s += v
	}

	return s, nil
}

// RowSums returns every row sum, indexed by degree.
func (m *Symmetric) RowSums() []int64 {
	out := make([]int64, m.n)
	for i := 0; i < m.n; i++ {
		out[i], _ = m.RowSum(i)
	}

	return out
}

// ClassSize returns n_d = rowsum(d)/d, or the raw row sum for d = 0.
// Integer division matches the class-size rule of jdm.ClassSizes on any
// matrix that passed jdm.Check.
func (m *Symmetric) ClassSize(d int) (int64, error) {
	s, err := m.RowSum(d)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return s, nil
	}

	return s / int64(d), nil
}

// Capacity returns the maximum edge-endpoint count cell (a,b) may hold in a
// simple graph: n_a·n_b, or n_a·(n_a−1) on the diagonal.
func (m *Symmetric) Capacity(a, b int) (int64, error) {
	na, err := m.ClassSize(a)
	if err != nil {
		return 0, err
	}
	if a == b {
		return na * (na - 1), nil
	}
	nb, err := m.ClassSize(b)
	if err != nil {
		return 0, err
	}

	return na * nb, nil
}

// Headroom returns Capacity(a,b) − J[a][b].
func (m *Symmetric) Headroom(a, b int) (int64, error) {
	c, err := m.Capacity(a, b)
	if err != nil {
		return 0, err
	}
	v, err := m.At(a, b)
	if err != nil {
		return 0, err
	}

	return c - v, nil
}

// Project returns a copy of cells with every Value replaced by the live
// J[K][L], preserving record order. Every non-zero cell that cells does not
// list follows in ascending (K,L) order with both mirrors, so no mass of m is
// dropped.
// Complexity: O(len(cells) + n²).
func (m *Symmetric) Project(cells []jdm.Cell) ([]jdm.Cell, error) {
	out := make([]jdm.Cell, len(cells), len(cells)+m.n)
	listed := make([]bool, len(m.data))
	for i, c := range cells {
		v, err := m.At(c.K, c.L)
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", ctxProject, i, err)
		}
		out[i] = jdm.Cell{K: c.K, L: c.L, Value: v}
		listed[c.K*m.n+c.L] = true
	}
	for off, v := range m.data {
		if v != 0 && !listed[off] {
			out = append(out, jdm.Cell{K: off / m.n, L: off % m.n, Value: v})
		}
	}

	return out, nil
}

// ToJDM returns every non-zero cell, both mirrors included.
func (m *Symmetric) ToJDM() *jdm.JDM {
	j := jdm.New()
	for i := 0; i < m.n; i++ {
		for k := 0; k < m.n; k++ {
			if v := m.data[i*m.n+k]; v != 0 {
				j.Set(i, k, v)
			}
		}
	}

	return j
}

// Clone returns a deep copy.
func (m *Symmetric) Clone() *Symmetric {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Symmetric{n: m.n, data: data}
}

// String renders one bracketed row per line.
func (m *Symmetric) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
