// Package matrix provides the aggregate form of a Joint Degree Matrix used by
// the mutation sampler: a dense, symmetric, row-major int64 matrix indexed by
// degree value.
//
// Symmetric keeps J[i][j] == J[j][i] on every write, so the sampler never has
// to mirror updates by hand. Row sums are the stub totals of the degree
// classes; ClassSize and Capacity derive the class sizes and the simple-graph
// edge-endpoint caps from the live matrix.
//
// Complexity quicksheet:
//   - NewSymmetric: O(n²) zero-init; At/Set/Shift: O(1); RowSum/ClassSize: O(n).
//
// Public indexers return errors instead of panicking.
package matrix
