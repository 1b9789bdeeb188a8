// SPDX-License-Identifier: MIT
// Package: jdmgraph/builder
//
// impl_switch.go - the neighbor switch that frees one stub on a saturated vertex.
//
// Canonical move:
//   • w is saturated (residual 0) and must take one more edge.
//   • Pick w' from w's partner class with a free stub, and a neighbor t of w
//     with t != w' and {w',t} absent.
//   • Rewire {w,t} → {w',t}: degrees of t unchanged, w loses one, w' gains one.
//     w and w' share a degree class, so the JDM is unchanged.
//
// Partner choice (first eligible in class order):
//   • avoid unset: any vertex with residual > 0.
//   • residual[avoid] > 1: prefer any other vertex, fall back to avoid.
//   • residual[avoid] <= 1: never avoid; it needs that stub for the pending edge.
//
// Complexity: O(|nodes| + n/wordBits + deg(w)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/jdmgraph/core"
)

// noAvoid disables the avoid rule of neighborSwitch.
const noAvoid = -1

// neighborSwitch restores one free stub on w. nodes is the class w's new
// partner is drawn from; avoid is the pending partner of w when both ends share
// a class, else noAvoid. On error the graph and residuals are unchanged.
func neighborSwitch(g *core.Graph, w int, nodes []int, residual []int, avoid int) error {
	wPrime := pickPartner(nodes, residual, avoid)
	if wPrime < 0 {
		return fmt.Errorf("%s: vertex %d: no partner with free stubs: %w",
			methodNeighborSwitch, w, ErrRepairExhausted)
	}

	t := -1
	for _, cand := range g.Neighbors(w) {
		if cand == wPrime {
			continue
		}
		if !g.HasEdge(wPrime, cand) {
			t = cand
			break
		}
	}
	if t < 0 {
		return fmt.Errorf("%s: vertex %d: no neighbor rewirable to %d: %w",
			methodNeighborSwitch, w, wPrime, ErrRepairExhausted)
	}

	g.RemoveEdge(w, t)
	g.AddEdge(wPrime, t)
	residual[w]++
	residual[wPrime]--

	return nil
}

// pickPartner returns the first vertex of nodes eligible as w', or -1.
func pickPartner(nodes []int, residual []int, avoid int) int {
	fallback := -1
	for _, c := range nodes {
		if residual[c] <= 0 {
			continue
		}
		if c == avoid && avoid != noAvoid {
			if residual[c] > 1 {
				fallback = c
			}
			continue
		}

		return c
	}

	return fallback
}
