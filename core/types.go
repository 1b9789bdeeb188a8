// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, sentinel errors and the NewGraph constructor.
// Policy:
//   - Sentinel errors only; callers branch with errors.Is.
//   - Hot-path mutators (AddEdge/RemoveEdge) do not validate; the realizer
//     guarantees in-range, non-loop, absent/present pairs before calling.

package core

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for Graph Store operations.
var (
	// ErrAllocation indicates the adjacency relation could not be sized for the
	// requested vertex count.
	ErrAllocation = errors.New("core: cannot allocate adjacency")

	// ErrVertexRange indicates a vertex id outside [0,n).
	ErrVertexRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop (u == v).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge in bulk construction.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// MaxVertices bounds the vertex count a Graph can be allocated for.
// At this size the relation occupies 512 MiB.
const MaxVertices = 1 << 16

const wordBits = bits.UintSize

// Edge is an unordered vertex pair. Edges returned by Graph.Edges always have U < V.
type Edge struct {
	U, V int
}

// String renders the edge in edge-list form "u,v".
func (e Edge) String() string {
	return fmt.Sprintf("%d,%d", e.U, e.V)
}

// Graph is a simple undirected graph on vertices [0,n).
//
// rows[u] is a bitset over [0,n); bit v is set iff {u,v} is an edge. The
// relation is kept symmetric by every mutator. degree and edges are counters
// maintained alongside the bits.
type Graph struct {
	n      int
	words  int      // words per row
	rows   [][]uint // adjacency bitsets, len n
	degree []int    // degree[u] == popcount(rows[u])
	edges  int      // number of unordered edges
}

// NewGraph allocates an empty Graph over n vertices.
// Complexity: O(n²/wordBits) time and memory.
func NewGraph(n int) (*Graph, error) {
	if n < 0 || n > MaxVertices {
		return nil, fmt.Errorf("NewGraph(%d): limit %d: %w", n, MaxVertices, ErrAllocation)
	}

	words := (n + wordBits - 1) / wordBits
	// One backing slice keeps rows contiguous.
	backing := make([]uint, n*words)
	rows := make([][]uint, n)
	for u := 0; u < n; u++ {
		rows[u] = backing[u*words : (u+1)*words : (u+1)*words]
	}

	return &Graph{
		n:      n,
		words:  words,
		rows:   rows,
		degree: make([]int, n),
	}, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of unordered edges. O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}
