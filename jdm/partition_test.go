package jdm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jdmgraph/jdm"
)

func TestNewPartition_Blocks(t *testing.T) {
	// n1 = 2, n2 = 3 (row sum 6), n3 = 2.
	j := cells(
		jdm.Cell{K: 1, L: 3, Value: 2},
		jdm.Cell{K: 3, L: 1, Value: 2},
		jdm.Cell{K: 2, L: 2, Value: 4},
		jdm.Cell{K: 2, L: 3, Value: 2},
		jdm.Cell{K: 3, L: 2, Value: 2},
		jdm.Cell{K: 3, L: 3, Value: 2},
	)
	p, err := jdm.NewPartition(j)
	require.NoError(t, err)

	require.Equal(t, 7, p.VertexCount)
	require.Len(t, p.Classes, 3)
	assert.Equal(t, []int{0, 1}, p.Class(1).Members)
	assert.Equal(t, []int{2, 3, 4}, p.Class(2).Members)
	assert.Equal(t, []int{5, 6}, p.Class(3).Members)
	assert.Equal(t, 3, p.Class(2).Size())
	assert.Nil(t, p.Class(9))

	assert.Equal(t, []int{1, 1, 2, 2, 2, 3, 3}, p.Residual)
	assert.Equal(t, p.Target, p.Residual)
	assert.False(t, p.Saturated())

	p.Residual[0] = 0
	p.Reset()
	assert.Equal(t, 1, p.Residual[0])
}

func TestNewPartition_Deterministic(t *testing.T) {
	j := cells(jdm.Cell{K: 1, L: 1, Value: 4})
	a, err := jdm.NewPartition(j)
	require.NoError(t, err)
	b, err := jdm.NewPartition(j.Clone())
	require.NoError(t, err)
	require.Equal(t, a.Classes, b.Classes)
}

func TestNewPartition_RejectsInfeasible(t *testing.T) {
	p, err := jdm.NewPartition(cells(jdm.Cell{K: 2, L: 2, Value: 2}))
	require.ErrorIs(t, err, jdm.ErrInfeasible)
	require.Nil(t, p)
}
