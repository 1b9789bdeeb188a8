// SPDX-License-Identifier: MIT
// Package: jdmgraph/jdm
//
// compare.go - JDM of a graph and cell-wise comparison.

package jdm

import (
	"sort"

	"github.com/katalvlaran/jdmgraph/core"
)

// FromGraph recomputes the JDM of g. Each edge {u,v} with degrees (k,l)
// increments J[k][l] and J[l][k]; an intra-class edge therefore adds 2 to J[k][k].
// Complexity: O(n²/wordBits + E).
func FromGraph(g *core.Graph) *JDM {
	j := New()
	for _, e := range g.Edges() {
		k, l := g.Degree(e.U), g.Degree(e.V)
		j.Add(k, l, 1)
		j.Add(l, k, 1)
	}

	return j
}

// Difference is one cell where two JDMs disagree.
type Difference struct {
	K, L int
	Want int64
	Got  int64
}

// Diff compares want and got over the union of their stored pairs, treating
// absent cells as zero. The result is ordered by (K,L); nil means equal.
func Diff(want, got *JDM) []Difference {
	keys := make(map[Pair]struct{}, len(want.cells)+len(got.cells))
	for p := range want.cells {
		keys[p] = struct{}{}
	}
	for p := range got.cells {
		keys[p] = struct{}{}
	}

	var out []Difference
	for p := range keys {
		w, g := want.cells[p], got.cells[p]
		if w != g {
			out = append(out, Difference{K: p.K, L: p.L, Want: w, Got: g})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		return Pair{out[a].K, out[a].L}.Less(Pair{out[b].K, out[b].L})
	})

	return out
}

// Equal reports whether a and b agree on every cell.
func Equal(a, b *JDM) bool {
	return len(Diff(a, b)) == 0
}
