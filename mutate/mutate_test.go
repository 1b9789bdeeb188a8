package mutate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jdmgraph/builder"
	"github.com/katalvlaran/jdmgraph/jdm"
	"github.com/katalvlaran/jdmgraph/matrix"
	"github.com/katalvlaran/jdmgraph/mutate"
)

// fourClasses has n1..n4 = 4 and exactly one disjoint candidate pair:
// (1,2) and (3,4).
func fourClasses(t *testing.T) *matrix.Symmetric {
	t.Helper()
	m, err := matrix.FromCells([]jdm.Cell{
		{K: 1, L: 2, Value: 2}, {K: 1, L: 3, Value: 1}, {K: 1, L: 4, Value: 1},
		{K: 2, L: 2, Value: 2}, {K: 2, L: 3, Value: 1}, {K: 2, L: 4, Value: 3},
		{K: 3, L: 3, Value: 4}, {K: 3, L: 4, Value: 6},
		{K: 4, L: 4, Value: 6},
	})
	require.NoError(t, err)
	require.NoError(t, jdm.Check(m.ToJDM()))

	return m
}

// graphMatrix returns the aggregate JDM of a G(n,p) sample.
func graphMatrix(t *testing.T, n int, p float64, seed int64) *matrix.Symmetric {
	t.Helper()
	g, err := builder.RandomSparse(n, p, builder.WithSeed(seed))
	require.NoError(t, err)
	m, err := matrix.FromJDM(jdm.FromGraph(g))
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m *matrix.Symmetric, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestStep_MovesMassBetweenDisjointCells(t *testing.T) {
	m := fourClasses(t)
	before := m.Clone()

	sw, err := mutate.Step(m, mutate.WithSeed(9))
	require.NoError(t, err)

	got := map[[2]int]bool{{sw.I1, sw.J1}: true, {sw.I2, sw.J2}: true}
	require.Equal(t, map[[2]int]bool{{1, 2}: true, {3, 4}: true}, got)
	require.GreaterOrEqual(t, sw.Magnitude, int64(1))
	require.LessOrEqual(t, sw.Magnitude, int64(2), "bounded by J[1][2]")
	require.GreaterOrEqual(t, sw.Samples, int64(2))

	k := sw.Magnitude
	assert.Equal(t, at(t, before, 1, 2)-k, at(t, m, 1, 2))
	assert.Equal(t, at(t, before, 3, 4)-k, at(t, m, 3, 4))
	assert.Equal(t, at(t, before, 1, 4)+k, at(t, m, 1, 4))
	assert.Equal(t, at(t, before, 2, 3)+k, at(t, m, 2, 3))
	assert.Equal(t, at(t, m, 2, 3), at(t, m, 3, 2), "mirror kept")
	assert.Equal(t, before.RowSums(), m.RowSums())
}

func TestRun_PreservesDegreeSequence(t *testing.T) {
	m := graphMatrix(t, 80, 0.15, 3)
	sums := m.RowSums()

	st, err := mutate.Run(m, 300, mutate.WithSeed(21))
	require.NoError(t, err)
	require.Equal(t, 300, st.Steps)
	require.True(t, st.Seeded)
	require.EqualValues(t, 21, st.Seed)
	require.GreaterOrEqual(t, st.Moved, int64(300))

	require.Equal(t, sums, m.RowSums())
	require.NoError(t, jdm.Check(m.ToJDM()), "mutated JDM stays feasible")
	for i := 0; i < m.Order(); i++ {
		for j := 0; j < m.Order(); j++ {
			require.Equal(t, at(t, m, i, j), at(t, m, j, i))
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	a := graphMatrix(t, 50, 0.2, 8)
	b := a.Clone()

	_, err := mutate.Run(a, 50, mutate.WithSeed(4))
	require.NoError(t, err)
	_, err = mutate.Run(b, 50, mutate.WithSeed(4))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())
}

func TestRun_ZeroStepsIsIdentity(t *testing.T) {
	m := fourClasses(t)
	before := m.String()

	st, err := mutate.Run(m, 0, mutate.WithSeed(1))
	require.NoError(t, err)
	require.Zero(t, st.Steps)
	require.Equal(t, before, m.String())
}

func TestRun_Errors(t *testing.T) {
	t.Run("negative steps", func(t *testing.T) {
		_, err := mutate.Run(fourClasses(t), -1, mutate.WithSeed(1))
		require.ErrorIs(t, err, mutate.ErrNegativeSteps)
	})
	t.Run("rng required", func(t *testing.T) {
		_, err := mutate.Run(fourClasses(t), 1)
		require.ErrorIs(t, err, mutate.ErrNeedRandSource)
	})
	t.Run("no disjoint candidates", func(t *testing.T) {
		// Only (1,2) reaches 2.
		m, err := matrix.FromCells([]jdm.Cell{{K: 1, L: 2, Value: 2}, {K: 3, L: 4, Value: 1}})
		require.NoError(t, err)
		before := m.String()
		_, err = mutate.Run(m, 5, mutate.WithSeed(1))
		require.ErrorIs(t, err, mutate.ErrNoSwapCandidates)
		require.Equal(t, before, m.String())

		_, err = mutate.Step(m, mutate.WithSeed(1))
		require.ErrorIs(t, err, mutate.ErrNoSwapCandidates)
	})
	t.Run("sample budget", func(t *testing.T) {
		// Candidates exist, but class 3 is empty (2/3 = 0), so every
		// destination touching it has zero headroom.
		m, err := matrix.FromCells([]jdm.Cell{{K: 0, L: 1, Value: 2}, {K: 2, L: 3, Value: 2}})
		require.NoError(t, err)
		before := m.String()
		_, err = mutate.Run(m, 1, mutate.WithSeed(1), mutate.WithSampleBudget(500))
		require.ErrorIs(t, err, mutate.ErrSampleBudgetExhausted)
		require.Equal(t, before, m.String())
	})
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { mutate.WithRand(nil) })
	require.Panics(t, func() { mutate.WithSampleBudget(-1) })
	require.Panics(t, func() { mutate.WithLogger(nil) })
}
