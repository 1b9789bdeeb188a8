package jdm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jdmgraph/core"
	"github.com/katalvlaran/jdmgraph/jdm"
)

func TestFromGraph_Triangle(t *testing.T) {
	// Triangle 0-1-2 plus pendant 3 on 0: degrees 3,2,2,1.
	g, err := core.FromEdges(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}, {U: 0, V: 3}})
	require.NoError(t, err)

	got := jdm.FromGraph(g)
	want := cells(
		jdm.Cell{K: 3, L: 2, Value: 2}, jdm.Cell{K: 2, L: 3, Value: 2},
		jdm.Cell{K: 2, L: 2, Value: 2},
		jdm.Cell{K: 3, L: 1, Value: 1}, jdm.Cell{K: 1, L: 3, Value: 1},
	)
	require.Empty(t, jdm.Diff(want, got))
	require.True(t, jdm.Equal(want, got))
	require.NoError(t, jdm.Check(got))
}

func TestDiff_AbsentIsZero(t *testing.T) {
	a := cells(jdm.Cell{K: 1, L: 1, Value: 0}, jdm.Cell{K: 2, L: 1, Value: 4})
	b := cells(jdm.Cell{K: 2, L: 1, Value: 2}, jdm.Cell{K: 1, L: 2, Value: 3})

	require.Equal(t, []jdm.Difference{
		{K: 1, L: 2, Want: 0, Got: 3},
		{K: 2, L: 1, Want: 4, Got: 2},
	}, jdm.Diff(a, b))
}

func TestJDM_Accessors(t *testing.T) {
	j := cells(
		jdm.Cell{K: 2, L: 1, Value: 1},
		jdm.Cell{K: 1, L: 2, Value: 1},
		jdm.Cell{K: 2, L: 1, Value: 3}, // last wins
	)
	require.Equal(t, 2, j.Len())
	require.EqualValues(t, 3, j.Get(2, 1))
	require.Zero(t, j.Get(5, 5))
	require.False(t, j.Has(5, 5))
	require.Equal(t, []int{1, 2}, j.Degrees())
	require.EqualValues(t, 3, j.RowSum(2))
	require.Equal(t, 2, j.MaxDegree())
	require.Equal(t, -1, jdm.New().MaxDegree())
	require.Equal(t, []jdm.Cell{{K: 1, L: 2, Value: 1}, {K: 2, L: 1, Value: 3}}, j.Cells())

	c := j.Clone()
	c.Add(2, 1, 1)
	require.EqualValues(t, 3, j.Get(2, 1))
	require.EqualValues(t, 4, c.Get(2, 1))
}
