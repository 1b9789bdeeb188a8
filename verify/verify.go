// SPDX-License-Identifier: MIT
// Package: jdmgraph/verify
//
// verify.go - edge list → gonum graph → JDM → diff.

package verify

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/jdmgraph/core"
	"github.com/katalvlaran/jdmgraph/jdm"
)

// Report is the outcome of Compare.
type Report struct {
	Nodes       int
	Edges       int
	Components  int
	Differences []jdm.Difference // nil when the JDMs agree
}

// OK reports whether no cell differs.
func (r *Report) OK() bool {
	return len(r.Differences) == 0
}

// Graph builds an undirected gonum graph with nodes 0..n-1 and the given
// edges. Loops and repeated pairs are ignored.
func Graph(n int, edges []core.Edge) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		u, v := int64(e.U), int64(e.V)
		if u == v || g.HasEdgeBetween(u, v) {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}

	return g
}

// EdgeGraph is an undirected graph that can also list its edges, each once.
// *simple.UndirectedGraph satisfies it.
type EdgeGraph interface {
	graph.Undirected
	Edges() graph.Edges
}

// Degree returns the number of neighbors of id in g.
func Degree(g graph.Undirected, id int64) int {
	return g.From(id).Len()
}

// JDMOf recomputes the JDM of g: every edge with endpoint degrees (k,l)
// adds one to J[k][l] and one to J[l][k].
func JDMOf(g EdgeGraph) *jdm.JDM {
	j := jdm.New()
	it := g.Edges()
	for it.Next() {
		e := it.Edge()
		k := Degree(g, e.From().ID())
		l := Degree(g, e.To().ID())
		j.Add(k, l, 1)
		j.Add(l, k, 1)
	}

	return j
}

// Compare loads edges over n vertices and diffs the recomputed JDM against want.
func Compare(want *jdm.JDM, n int, edges []core.Edge) *Report {
	g := Graph(n, edges)

	return &Report{
		Nodes:       g.Nodes().Len(),
		Edges:       g.Edges().Len(),
		Components:  len(topo.ConnectedComponents(g)),
		Differences: jdm.Diff(want, JDMOf(g)),
	}
}
