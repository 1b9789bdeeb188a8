// SPDX-License-Identifier: MIT
// Package: jdmgraph/builder
//
// api.go - thin public entry-points and result types for the builder package.
//
// Design contract (strict):
//   - Realize and RandomSparse are the only constructors; implementations live
//     in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"github.com/katalvlaran/jdmgraph/core"
	"github.com/katalvlaran/jdmgraph/jdm"
)

// Result is the outcome of a successful Realize call.
type Result struct {
	// Graph is the realized simple graph; its JDM equals the target exactly.
	Graph *core.Graph
	// Edges is the final edge set (U < V ascending). Neighbor switches rewire
	// earlier placements, so this is read back from Graph, not logged per draw.
	Edges []core.Edge
	// Partition holds the degree classes; every residual is zero.
	Partition *jdm.Partition

	// Switches counts neighbor switches in the successful attempt.
	Switches int
	// Draws counts random pair draws in the successful attempt.
	Draws int64
	// Attempts is the 1-based index of the successful attempt.
	Attempts int

	// Seed is the RNG seed when it was supplied through WithSeed.
	Seed   int64
	Seeded bool
}

// VertexCount returns the number of vertices in the realized graph.
func (r *Result) VertexCount() int {
	return r.Graph.VertexCount()
}

// EdgeCount returns the number of edges in the realized graph.
func (r *Result) EdgeCount() int {
	return r.Graph.EdgeCount()
}
