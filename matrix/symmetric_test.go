package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jdmgraph/jdm"
	"github.com/katalvlaran/jdmgraph/matrix"
)

// MustSymmetric loads cells or fails the test.
func MustSymmetric(t *testing.T, cells ...jdm.Cell) *matrix.Symmetric {
	t.Helper()
	m, err := matrix.FromCells(cells)
	require.NoError(t, err)

	return m
}

func TestNewSymmetric_BadShape(t *testing.T) {
	_, err := matrix.NewSymmetric(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromCells(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromCells([]jdm.Cell{{K: -1, L: 0, Value: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSymmetric_OrderLimit(t *testing.T) {
	_, err := matrix.NewSymmetric(matrix.MaxOrder + 1)
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, err = matrix.FromCells([]jdm.Cell{{K: 2147483647, L: 1}})
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, err = matrix.FromCells([]jdm.Cell{{K: 1, L: matrix.MaxOrder}})
	require.ErrorIs(t, err, matrix.ErrAllocation)

	m, err := matrix.FromCells([]jdm.Cell{{K: matrix.MaxOrder - 1, L: 1}})
	require.NoError(t, err)
	require.Equal(t, matrix.MaxOrder, m.Order())
}

func TestSymmetric_SetShiftMirror(t *testing.T) {
	m, err := matrix.NewSymmetric(4)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 3, 5))
	v, err := m.At(3, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 5, v)

	require.NoError(t, m.Shift(3, 1, -2))
	v, _ = m.At(1, 3)
	assert.EqualValues(t, 3, v)

	require.ErrorIs(t, m.Shift(1, 3, -4), matrix.ErrNegativeValue)
	v, _ = m.At(1, 3)
	assert.EqualValues(t, 3, v, "rejected shift must not mutate")

	require.ErrorIs(t, m.Set(0, 0, -1), matrix.ErrNegativeValue)
	_, err = m.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Shift(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.RowSum(7)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSymmetric_ClassSizeCapacity(t *testing.T) {
	// n1 = 2, n2 = 3, n3 = 2 (see jdm partition fixture).
	m := MustSymmetric(t,
		jdm.Cell{K: 1, L: 3, Value: 2},
		jdm.Cell{K: 2, L: 2, Value: 4},
		jdm.Cell{K: 2, L: 3, Value: 2},
		jdm.Cell{K: 3, L: 3, Value: 2},
	)
	require.Equal(t, 4, m.Order())
	assert.Equal(t, []int64{0, 2, 6, 6}, m.RowSums())

	n2, err := m.ClassSize(2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n2)

	c, err := m.Capacity(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 6, c)

	c, err = m.Capacity(3, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 2, c)

	h, err := m.Headroom(2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, h)
}

func TestSymmetric_DegreeZeroClassSize(t *testing.T) {
	m := MustSymmetric(t, jdm.Cell{K: 0, L: 1, Value: 2}, jdm.Cell{K: 1, L: 1, Value: 0})
	n0, err := m.ClassSize(0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n0)
}

func TestSymmetric_ProjectPreservesOrder(t *testing.T) {
	in := []jdm.Cell{{K: 3, L: 1, Value: 9}, {K: 1, L: 1, Value: 2}, {K: 1, L: 3, Value: 4}}
	m := MustSymmetric(t, in...)

	// (1,3) was written last, so its value wins for the mirror (3,1) too.
	out, err := m.Project(in)
	require.NoError(t, err)
	assert.Equal(t, []jdm.Cell{{K: 3, L: 1, Value: 4}, {K: 1, L: 1, Value: 2}, {K: 1, L: 3, Value: 4}}, out)

	_, err = m.Project([]jdm.Cell{{K: 8, L: 0}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSymmetric_ProjectAppendsUnlistedCells(t *testing.T) {
	in := []jdm.Cell{{K: 3, L: 4, Value: 12}, {K: 4, L: 3, Value: 12}, {K: 1, L: 2, Value: 4}, {K: 2, L: 1, Value: 4}}
	m := MustSymmetric(t, in...)
	require.NoError(t, m.Shift(1, 2, -4))
	require.NoError(t, m.Shift(3, 4, -4))
	require.NoError(t, m.Shift(1, 4, 4))
	require.NoError(t, m.Shift(3, 2, 4))

	out, err := m.Project(in)
	require.NoError(t, err)
	assert.Equal(t, []jdm.Cell{
		{K: 3, L: 4, Value: 8}, {K: 4, L: 3, Value: 8}, {K: 1, L: 2, Value: 0}, {K: 2, L: 1, Value: 0},
		{K: 1, L: 4, Value: 4}, {K: 2, L: 3, Value: 4}, {K: 3, L: 2, Value: 4}, {K: 4, L: 1, Value: 4},
	}, out)

	back := MustSymmetric(t, out...)
	assert.Equal(t, []int64{0, 4, 4, 12, 12}, back.RowSums())
}

func TestSymmetric_ToJDMAndClone(t *testing.T) {
	m := MustSymmetric(t, jdm.Cell{K: 1, L: 2, Value: 2}, jdm.Cell{K: 2, L: 2, Value: 0})
	j := m.ToJDM()
	assert.Equal(t, []jdm.Cell{{K: 1, L: 2, Value: 2}, {K: 2, L: 1, Value: 2}}, j.Cells())

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 7))
	v, _ := m.At(1, 2)
	assert.EqualValues(t, 2, v)
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 2]\n[0, 2, 0]\n", m.String())
}
