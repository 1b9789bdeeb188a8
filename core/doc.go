// Package core provides the Graph Store used by the JDM realizer: a simple,
// undirected graph over a fixed vertex set [0,n) backed by a dense symmetric
// boolean relation.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are dense integer ids allocated once by NewGraph(n).
//   - Edges are unordered pairs {u,v} with u != v (no loops, no multi-edges).
//   - HasEdge / AddEdge / RemoveEdge are O(1) bit operations on one row per vertex.
//   - Neighbors(u) is O(n) and returns ids in ascending order.
//   - Degree(u) and EdgeCount() are O(1) counters kept in sync with the relation.
//
// Why a dense relation?
//
//	The realizer probes random vertex pairs far more often than it adds edges,
//	so constant-time membership dominates. Memory is n²/8 bytes; the vertex count
//	is bounded by the target JDM's total stub count and by MaxVertices.
//
// Concurrency:
//
//	A Graph is owned by exactly one run. It carries no locks; callers that
//	share a Graph across goroutines must synchronize externally.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)        // O(n²/64)
//	FromEdges(n int, edges []Edge) (*Graph, error)
//	HasEdge(u, v int) bool                 // O(1)
//	AddEdge(u, v int)                      // O(1), caller verified absence
//	RemoveEdge(u, v int)                   // O(1)
//	Neighbors(u int) []int                 // O(n)
//	Degree(u int) int                      // O(1)
//	Edges() []Edge                         // O(n²/64 + E), u<v ascending
//
// Errors:
//
//	ErrAllocation     - vertex count negative or above MaxVertices.
//	ErrVertexRange    - an edge endpoint is outside [0,n).
//	ErrLoopNotAllowed - an edge has u == v.
//	ErrDuplicateEdge  - FromEdges saw the same unordered pair twice.
package core
