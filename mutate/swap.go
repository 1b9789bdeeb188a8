// SPDX-License-Identifier: MIT
// Package: jdmgraph/mutate
//
// swap.go - one capacity-bounded disjoint 2-swap.
//
// Sampling order per attempt:
//   1. (i1,j1): i1 uniform in [0,n-1), j1 uniform in (i1,n), redrawn until J >= 2.
//   2. (i2,j2): likewise, redrawn until J >= 2.
//   3. {i1,j1,i2,j2} not distinct restarts at 1, so a first pair without any
//      disjoint partner cannot stall the step.
//   4. maxK from the live counts and headrooms; maxK < 1 restarts at 1.
// Every redraw counts against the sample budget.

package mutate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/jdmgraph/matrix"
)

// Swap describes one applied move: Magnitude was taken from (I1,J1) and
// (I2,J2) and added to (I1,J2) and (I2,J1).
type Swap struct {
	I1, J1    int
	I2, J2    int
	Magnitude int64
	Samples   int64 // candidate pairs drawn for this step
}

// Step applies a single swap to m.
func Step(m *matrix.Symmetric, opts ...Option) (Swap, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Swap{}, fmt.Errorf("%s: %w", methodStep, ErrNeedRandSource)
	}
	if !hasCandidates(m) {
		return Swap{}, fmt.Errorf("%s: %w", methodStep, ErrNoSwapCandidates)
	}

	return step(m, cfg.rng, cfg.sampleBudget)
}

// step assumes m has candidates and rng is set.
func step(m *matrix.Symmetric, rng *rand.Rand, budget int64) (Swap, error) {
	n := m.Order()
	var samples int64

	// draw samples one upper pair with J >= 2, or ok=false when the budget ran out.
	draw := func() (i, j int, ok bool) {
		for {
			if budget > 0 && samples >= budget {
				return 0, 0, false
			}
			samples++
			i = rng.Intn(n - 1)
			j = i + 1 + rng.Intn(n-i-1)
			if v, _ := m.At(i, j); v >= 2 {
				return i, j, true
			}
		}
	}

	for {
		i1, j1, ok := draw()
		if !ok {
			break
		}
		i2, j2, ok := draw()
		if !ok {
			break
		}
		if !distinct(i1, j1, i2, j2) {
			continue
		}

		maxK, err := magnitudeBound(m, i1, j1, i2, j2)
		if err != nil {
			return Swap{}, err
		}
		if maxK < 1 {
			continue
		}
		k := 1 + rng.Int63n(maxK)
		if err = apply(m, i1, j1, i2, j2, k); err != nil {
			return Swap{}, err
		}

		return Swap{I1: i1, J1: j1, I2: i2, J2: j2, Magnitude: k, Samples: samples}, nil
	}

	return Swap{}, fmt.Errorf("%s: %d samples without an admissible swap: %w",
		methodStep, samples, ErrSampleBudgetExhausted)
}

func distinct(i1, j1, i2, j2 int) bool {
	return i1 != i2 && i1 != j2 && j1 != i2 && j1 != j2
}

// magnitudeBound returns min(J[i1][j1], J[i2][j2], headroom(i1,j2), headroom(i2,j1)).
func magnitudeBound(m *matrix.Symmetric, i1, j1, i2, j2 int) (int64, error) {
	a, err := m.At(i1, j1)
	if err != nil {
		return 0, err
	}
	b, err := m.At(i2, j2)
	if err != nil {
		return 0, err
	}
	h12, err := m.Headroom(i1, j2)
	if err != nil {
		return 0, err
	}
	h21, err := m.Headroom(i2, j1)
	if err != nil {
		return 0, err
	}

	return min(a, b, h12, h21), nil
}

// apply moves k units; every source holds at least k, so no write is rejected.
func apply(m *matrix.Symmetric, i1, j1, i2, j2 int, k int64) error {
	moves := [...]struct {
		i, j  int
		delta int64
	}{
		{i1, j1, -k},
		{i2, j2, -k},
		{i1, j2, k},
		{i2, j1, k},
	}
	for _, mv := range moves {
		if err := m.Shift(mv.i, mv.j, mv.delta); err != nil {
			return fmt.Errorf("%s: %w", methodStep, err)
		}
	}

	return nil
}

// hasCandidates reports whether two index-disjoint upper cells with J >= 2 exist.
// Complexity: O(n² + c²) for c eligible cells.
func hasCandidates(m *matrix.Symmetric) bool {
	type pair struct{ i, j int }
	var cells []pair
	n := m.Order()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, _ := m.At(i, j); v >= 2 {
				cells = append(cells, pair{i, j})
			}
		}
	}
	for a := 0; a < len(cells); a++ {
		for b := a + 1; b < len(cells); b++ {
			if distinct(cells[a].i, cells[a].j, cells[b].i, cells[b].j) {
				return true
			}
		}
	}

	return false
}
