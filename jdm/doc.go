// Package jdm models a Joint Degree Matrix: the number of edge endpoints
// between every ordered pair of degree classes of a simple undirected graph.
//
// Conventions:
//
//	J[k][l] (k != l) counts the edges joining a degree-k vertex to a degree-l vertex.
//	J[k][k] counts intra-class edges twice, once per endpoint.
//	A missing cell is zero.
//	Row k therefore sums to k·n_k, the stub total of degree class k.
//
// The package provides:
//
//   - JDM: a sparse map keyed by Pair{K,L}, built from Cells in file order.
//   - Check: the realizability conditions 2–5 (divisibility, off-diagonal cap,
//     diagonal cap, diagonal parity), reported as *InfeasibleError.
//   - NewPartition: degree classes with contiguous vertex-id blocks and the
//     initial residual stub budget, the input of the realizer.
//   - FromGraph / Diff: recompute the JDM of a graph and compare two JDMs.
package jdm
