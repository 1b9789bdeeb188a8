// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: per-vertex queries: Neighbors, Degree, Degrees.

package core

import "math/bits"

// Neighbors returns the ids adjacent to u in ascending order.
// Out-of-range ids return nil.
// Complexity: O(n/wordBits + deg(u)).
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n {
		return nil
	}
	out := make([]int, 0, g.degree[u])
	for w, word := range g.rows[u] {
		for word != 0 {
			b := bits.TrailingZeros(word)
			out = append(out, w*wordBits+b)
			word &= word - 1
		}
	}

	return out
}

// Degree returns the number of neighbors of u, or 0 for out-of-range ids.
// Complexity: O(1).
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}

	return g.degree[u]
}

// Degrees returns a copy of the degree sequence indexed by vertex id.
func (g *Graph) Degrees() []int {
	out := make([]int, g.n)
	copy(out, g.degree)

	return out
}
