// SPDX-License-Identifier: MIT
// Package: jdmgraph/builder
//
// impl_realize.go - implementation of Realize(j, opts...).
//
// Canonical model:
//   • Partition the vertex set into degree classes (jdm.NewPartition runs the
//     feasibility check first; an infeasible JDM never allocates a graph).
//   • For every cell (k,l) with k ≥ l and a positive count, in ascending order,
//     place count edges (count/2 on the diagonal) by drawing v ∈ class k and
//     w ∈ class l uniformly, redrawing on v == w or an existing edge.
//   • A saturated endpoint is repaired by neighborSwitch before placement.
//
// Contract:
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • On success every residual is 0 and FromGraph(result) == j.
//   • ErrRepairExhausted is retried from scratch up to cfg.attempts times;
//     every other error is returned at once.
//
// Determinism:
//   • Fixed cell order and fixed class member order → identical outcomes for
//     the same seed.

package builder

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jdmgraph/core"
	"github.com/katalvlaran/jdmgraph/jdm"
)

// quota is the number of edges still to place between two degree classes.
type quota struct {
	k, l     int
	edges    int64
	from, to *jdm.Class
}

// runStats are the counters of one construction attempt.
type runStats struct {
	switches int
	draws    int64
}

// Realize builds a random simple graph whose JDM equals j.
func Realize(j *jdm.JDM, opts ...BuilderOption) (*Result, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodRealize, ErrNeedRandSource)
	}

	p, err := jdm.NewPartition(j)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRealize, err)
	}
	plan, required, err := planQuotas(j, p)
	if err != nil {
		return nil, err
	}
	budget := cfg.drawBudgetFor(required)

	log := cfg.logger.WithFields(logrus.Fields{
		"nodes": p.VertexCount,
		"edges": required,
	})
	if cfg.seeded {
		log = log.WithField("seed", cfg.seed)
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.attempts; attempt++ {
		if attempt > 1 {
			p.Reset()
		}
		g, err := core.NewGraph(p.VertexCount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRealize, err)
		}

		stats, err := placeEdges(g, p, plan, cfg, budget)
		if err != nil {
			if !errors.Is(err, ErrRepairExhausted) {
				return nil, fmt.Errorf("%s: %w", MethodRealize, err)
			}
			lastErr = err
			log.WithField("attempt", attempt).WithError(err).Debug("realize attempt failed")
			continue
		}

		if err = verifyExact(j, g, p, required); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"attempt":  attempt,
			"switches": stats.switches,
			"draws":    stats.draws,
		}).Debug("realize attempt succeeded")

		return &Result{
			Graph:     g,
			Edges:     g.Edges(),
			Partition: p,
			Switches:  stats.switches,
			Draws:     stats.draws,
			Attempts:  attempt,
			Seed:      cfg.seed,
			Seeded:    cfg.seeded,
		}, nil
	}

	return nil, fmt.Errorf("%s: gave up after %d attempt(s): %w", MethodRealize, cfg.attempts, lastErr)
}

// planQuotas lists the (k,l), k ≥ l, cells with positive counts in ascending
// order, halving diagonal counts, and returns the total edge count.
func planQuotas(j *jdm.JDM, p *jdm.Partition) ([]quota, int64, error) {
	var (
		plan  []quota
		total int64
	)
	for _, c := range j.Cells() {
		if c.Value <= 0 || c.K < c.L {
			continue
		}
		from, to := p.Class(c.K), p.Class(c.L)
		if from == nil || to == nil || from.Size() == 0 || to.Size() == 0 {
			// Unreachable after jdm.Check: a positive cell implies both classes are populated.
			return nil, 0, fmt.Errorf("%s: cell (%d,%d) has an empty class: %w",
				MethodRealize, c.K, c.L, jdm.ErrInfeasible)
		}
		n := c.Value
		if c.K == c.L {
			n /= 2
		}
		plan = append(plan, quota{k: c.K, l: c.L, edges: n, from: from, to: to})
		total += n
	}

	return plan, total, nil
}

// placeEdges runs one construction attempt on the empty graph g.
func placeEdges(g *core.Graph, p *jdm.Partition, plan []quota, cfg builderConfig, budget int64) (runStats, error) {
	var (
		st       runStats
		rng      = cfg.rng
		residual = p.Residual
	)
	for _, q := range plan {
		remaining := q.edges
		for remaining > 0 {
			if budget > 0 && st.draws >= budget {
				return st, fmt.Errorf("cell (%d,%d): %d edge(s) left after %d draws: %w",
					q.k, q.l, remaining, st.draws, ErrDrawBudgetExhausted)
			}
			st.draws++

			v := q.from.Members[rng.Intn(len(q.from.Members))]
			w := q.to.Members[rng.Intn(len(q.to.Members))]
			if v == w || g.HasEdge(v, w) {
				continue
			}

			if residual[v] == 0 {
				if err := neighborSwitch(g, v, q.from.Members, residual, noAvoid); err != nil {
					return st, err
				}
				st.switches++
			}
			if residual[w] == 0 {
				var err error
				if q.k != q.l {
					err = neighborSwitch(g, w, q.to.Members, residual, noAvoid)
				} else {
					err = neighborSwitch(g, w, q.from.Members, residual, v)
				}
				if err != nil {
					return st, err
				}
				st.switches++
			}

			g.AddEdge(v, w)
			residual[v]--
			residual[w]--
			remaining--
		}
	}

	return st, nil
}

// verifyExact rejects any graph that is not an exact realization of j.
func verifyExact(j *jdm.JDM, g *core.Graph, p *jdm.Partition, required int64) error {
	if !p.Saturated() {
		return fmt.Errorf("%s: unused stubs remain: %w", MethodRealize, ErrInexactRealization)
	}
	if int64(g.EdgeCount()) != required {
		return fmt.Errorf("%s: %d edges, want %d: %w", MethodRealize, g.EdgeCount(), required, ErrInexactRealization)
	}
	if diff := jdm.Diff(j, jdm.FromGraph(g)); len(diff) > 0 {
		d := diff[0]
		return fmt.Errorf("%s: %d cell(s) differ, first J[%d][%d]=%d want %d: %w",
			MethodRealize, len(diff), d.K, d.L, d.Got, d.Want, ErrInexactRealization)
	}

	return nil
}
