// SPDX-License-Identifier: MIT
// Package: jdmgraph/jdm
//
// jdm.go - the JDM container.
//
// Determinism:
//   - Cells(), Degrees() and every iteration helper return ascending (K,L) order,
//     never map order.

package jdm

import "sort"

// Pair is an ordered pair of degree values.
type Pair struct {
	K, L int
}

// Less orders pairs by K, then L.
func (p Pair) Less(q Pair) bool {
	if p.K != q.K {
		return p.K < q.K
	}

	return p.L < q.L
}

// Cell is one JDM record, the in-memory form of a "k,l,value" line.
type Cell struct {
	K, L  int
	Value int64
}

// JDM maps degree pairs to endpoint counts. Absent pairs read as zero.
// Explicitly stored zero cells are kept: they mark row k as present, which
// makes k a degree class of size zero.
type JDM struct {
	cells map[Pair]int64
}

// New returns an empty JDM.
func New() *JDM {
	return &JDM{cells: make(map[Pair]int64)}
}

// FromCells builds a JDM from records in order; a repeated pair keeps the
// last value.
func FromCells(cells []Cell) *JDM {
	j := &JDM{cells: make(map[Pair]int64, len(cells))}
	for _, c := range cells {
		j.cells[Pair{c.K, c.L}] = c.Value
	}

	return j
}

// Get returns J[k][l], zero when absent.
func (j *JDM) Get(k, l int) int64 {
	return j.cells[Pair{k, l}]
}

// Has reports whether (k,l) is stored, including explicit zeros.
func (j *JDM) Has(k, l int) bool {
	_, ok := j.cells[Pair{k, l}]

	return ok
}

// Set stores J[k][l] = v.
func (j *JDM) Set(k, l int, v int64) {
	j.cells[Pair{k, l}] = v
}

// Add increments J[k][l] by delta.
func (j *JDM) Add(k, l int, delta int64) {
	j.cells[Pair{k, l}] += delta
}

// Len returns the number of stored cells.
func (j *JDM) Len() int {
	return len(j.cells)
}

// Cells returns every stored cell in ascending (K,L) order.
func (j *JDM) Cells() []Cell {
	pairs := j.pairs()
	out := make([]Cell, len(pairs))
	for i, p := range pairs {
		out[i] = Cell{K: p.K, L: p.L, Value: j.cells[p]}
	}

	return out
}

// Degrees returns the distinct row degrees K in ascending order.
func (j *JDM) Degrees() []int {
	seen := make(map[int]struct{})
	for p := range j.cells {
		seen[p.K] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// RowSum returns Σ_l J[k][l], the stub total of class k.
func (j *JDM) RowSum(k int) int64 {
	var s int64
	for p, v := range j.cells {
		if p.K == k {
			s += v
		}
	}

	return s
}

// MaxDegree returns the largest degree appearing as K or L, or -1 when empty.
func (j *JDM) MaxDegree() int {
	maxd := -1
	for p := range j.cells {
		if p.K > maxd {
			maxd = p.K
		}
		if p.L > maxd {
			maxd = p.L
		}
	}

	return maxd
}

// Clone returns an independent copy.
func (j *JDM) Clone() *JDM {
	c := &JDM{cells: make(map[Pair]int64, len(j.cells))}
	for p, v := range j.cells {
		c.cells[p] = v
	}

	return c
}

// pairs returns the stored keys sorted ascending.
func (j *JDM) pairs() []Pair {
	out := make([]Pair, 0, len(j.cells))
	for p := range j.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Less(out[b]) })

	return out
}
