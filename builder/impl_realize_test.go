package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jdmgraph/builder"
	"github.com/katalvlaran/jdmgraph/jdm"
)

// assertExact checks every realizer guarantee on res against target.
func assertExact(t *testing.T, target *jdm.JDM, res *builder.Result) {
	t.Helper()
	g := res.Graph

	require.Empty(t, jdm.Diff(target, jdm.FromGraph(g)), "recomputed JDM must equal the target")

	for v, want := range res.Partition.Target {
		assert.Equal(t, want, g.Degree(v), "vertex %d degree", v)
		assert.Zero(t, res.Partition.Residual[v], "vertex %d residual", v)
	}

	seen := make(map[[2]int]bool, len(res.Edges))
	for _, e := range res.Edges {
		require.Less(t, e.U, e.V, "edges are listed once with U < V, no loops")
		key := [2]int{e.U, e.V}
		require.False(t, seen[key], "duplicate edge %v", e)
		seen[key] = true
	}
	require.Len(t, res.Edges, g.EdgeCount())
}

func TestRealize_SingleEdge(t *testing.T) {
	j := jdm.FromCells([]jdm.Cell{{K: 1, L: 1, Value: 2}})

	res, err := builder.Realize(j, builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 2, res.VertexCount())
	require.Equal(t, 1, res.EdgeCount())
	require.True(t, res.Graph.HasEdge(0, 1))
	require.Equal(t, []int{0, 0}, res.Partition.Residual)
	require.True(t, res.Seeded)
	require.EqualValues(t, 7, res.Seed)
	assertExact(t, j, res)
}

func TestRealize_RandomTargets(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		src, err := builder.RandomSparse(60, 0.12, builder.WithSeed(seed))
		require.NoError(t, err)
		target := jdm.FromGraph(src)

		res, err := builder.Realize(target, builder.WithSeed(seed*31), builder.WithAttempts(20))
		require.NoError(t, err, "seed %d", seed)
		assertExact(t, target, res)
	}
}

func TestRealize_CompleteGraph(t *testing.T) {
	// K5: every vertex has degree 4, 10 edges, J[4][4] = 20.
	j := jdm.FromCells([]jdm.Cell{{K: 4, L: 4, Value: 20}})
	res, err := builder.Realize(j, builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 10, res.EdgeCount())
	assertExact(t, j, res)
}

func TestRealize_Deterministic(t *testing.T) {
	src, err := builder.RandomSparse(30, 0.2, builder.WithSeed(11))
	require.NoError(t, err)
	target := jdm.FromGraph(src)

	a, errA := builder.Realize(target, builder.WithSeed(5), builder.WithAttempts(20))
	b, errB := builder.Realize(target, builder.WithSeed(5), builder.WithAttempts(20))
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, a.Edges, b.Edges)
	require.Equal(t, a.Switches, b.Switches)
	require.Equal(t, a.Draws, b.Draws)
}

func TestRealize_Errors(t *testing.T) {
	t.Run("infeasible", func(t *testing.T) {
		res, err := builder.Realize(jdm.FromCells([]jdm.Cell{{K: 2, L: 2, Value: 2}}), builder.WithSeed(1))
		require.ErrorIs(t, err, jdm.ErrInfeasible)
		require.Nil(t, res)
	})
	t.Run("rng required", func(t *testing.T) {
		_, err := builder.Realize(jdm.FromCells([]jdm.Cell{{K: 1, L: 1, Value: 2}}))
		require.ErrorIs(t, err, builder.ErrNeedRandSource)
	})
	t.Run("degree zero partner has no stubs", func(t *testing.T) {
		j := jdm.FromCells([]jdm.Cell{
			{K: 0, L: 1, Value: 2},
			{K: 1, L: 1, Value: 0},
			{K: 1, L: 0, Value: 2},
		})
		require.NoError(t, jdm.Check(j))
		res, err := builder.Realize(j, builder.WithSeed(1), builder.WithAttempts(3))
		require.ErrorIs(t, err, builder.ErrRepairExhausted)
		require.Nil(t, res)
	})
	t.Run("draw budget", func(t *testing.T) {
		// K3 needs three edges; one draw cannot place them all.
		j := jdm.FromCells([]jdm.Cell{{K: 2, L: 2, Value: 6}})
		res, err := builder.Realize(j, builder.WithSeed(1), builder.WithDrawBudget(1))
		require.ErrorIs(t, err, builder.ErrDrawBudgetExhausted)
		require.Nil(t, res)
	})
}

func TestRealize_EmptyJDM(t *testing.T) {
	res, err := builder.Realize(jdm.New(), builder.WithSeed(1))
	require.NoError(t, err)
	require.Zero(t, res.VertexCount())
	require.Empty(t, res.Edges)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithAttempts(0) })
	require.Panics(t, func() { builder.WithDrawBudget(-1) })
	require.Panics(t, func() { builder.WithLogger(nil) })
}
