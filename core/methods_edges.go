// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: HasEdge/AddEdge/RemoveEdge/Edges/FromEdges.
// Determinism:
//   - Edges() returns pairs with U < V sorted by (U, V) ascending.
// AI-HINT (file):
//   - AddEdge is NOT idempotent: a second call on a present pair corrupts the
//     degree and edge counters. Probe with HasEdge first.

package core

import (
	"fmt"
	"math/bits"
)

// HasEdge reports whether {u,v} is an edge.
// Out-of-range ids report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.rows[u][v/wordBits]&(1<<(uint(v)%wordBits)) != 0
}

// AddEdge inserts {u,v}. The caller must have verified u != v, both ids in
// range and HasEdge(u,v) == false.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) {
	g.rows[u][v/wordBits] |= 1 << (uint(v) % wordBits)
	g.rows[v][u/wordBits] |= 1 << (uint(u) % wordBits)
	g.degree[u]++
	g.degree[v]++
	g.edges++
}

// RemoveEdge deletes {u,v}. Removing an absent pair is a no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) {
	if !g.HasEdge(u, v) {
		return
	}
	g.rows[u][v/wordBits] &^= 1 << (uint(v) % wordBits)
	g.rows[v][u/wordBits] &^= 1 << (uint(u) % wordBits)
	g.degree[u]--
	g.degree[v]--
	g.edges--
}

// Edges returns every edge once with U < V, ordered by (U, V).
// Complexity: O(n²/wordBits + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u := 0; u < g.n; u++ {
		// Start scanning at the word holding u+1 and mask off bits <= u.
		start := (u + 1) / wordBits
		for w := start; w < g.words; w++ {
			word := g.rows[u][w]
			if w == start {
				word &^= (1 << (uint(u+1) % wordBits)) - 1
			}
			for word != 0 {
				b := bits.TrailingZeros(word)
				out = append(out, Edge{U: u, V: w*wordBits + b})
				word &= word - 1
			}
		}
	}

	return out
}

// FromEdges builds a Graph over n vertices from an edge list, validating every
// pair. Endpoint order inside an Edge is not significant.
// Complexity: O(n²/wordBits + E).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("FromEdges: edge %d (%s) with n=%d: %w", i, e, n, ErrVertexRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("FromEdges: edge %d (%s): %w", i, e, ErrLoopNotAllowed)
		}
		if g.HasEdge(e.U, e.V) {
			return nil, fmt.Errorf("FromEdges: edge %d (%s): %w", i, e, ErrDuplicateEdge)
		}
		g.AddEdge(e.U, e.V)
	}

	return g, nil
}
