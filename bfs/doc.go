// Package bfs provides breadth-first search over a core.Graph.
//
// BFS explores vertices in increasing distance from a start vertex and
// returns the visit order, the hop distance of every reached vertex and the
// parent links of the BFS tree. Neighbors are expanded in ascending id order,
// so results are deterministic.
//
// Components labels every vertex with its connected component by running one
// BFS per unvisited vertex; the realize command reports the count so callers
// can tell whether a realization came out connected.
//
// Options:
//
//	WithContext(ctx)   - cancellation, checked once per dequeued vertex.
//	WithMaxDepth(d)    - stop expanding beyond depth d (0 = unlimited).
//	WithOnVisit(fn)    - hook per visited vertex; an error aborts the search.
//
// Complexity: O(n·n/wordBits + E) per search on the bitset store.
package bfs
