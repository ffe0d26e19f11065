// SPDX-License-Identifier: MIT

package array2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qmkit/array2d"
)

// requireShape asserts the container's extents and the shape invariant
// size == rows*cols in one place.
func requireShape[T any](t *testing.T, a *array2d.Array2D[T], rows, cols int) {
	t.Helper()
	require.Equal(t, rows, a.Rows())
	require.Equal(t, cols, a.Cols())
	require.Equal(t, rows*cols, a.Size())
}

func TestNew_ZeroInitialized(t *testing.T) {
	a, err := array2d.New[int](3, 4)
	require.NoError(t, err)
	requireShape(t, a, 3, 4)
	for _, v := range a.AsSlice() {
		require.Zero(t, v)
	}
}

func TestNew_NegativeDimension(t *testing.T) {
	_, err := array2d.New[int](-1, 5)
	require.ErrorIs(t, err, array2d.ErrNegativeDimension)
	require.ErrorIs(t, err, array2d.ErrInvalidArgument)

	_, err = array2d.New[int](5, -1)
	require.ErrorIs(t, err, array2d.ErrInvalidArgument)
}

func TestNew_Overflow(t *testing.T) {
	_, err := array2d.New[int](math.MaxInt/2, 3)
	require.ErrorIs(t, err, array2d.ErrOverflow)
}

func TestNew_ZeroExtentKeepsOther(t *testing.T) {
	a, err := array2d.New[int](5, 0)
	require.NoError(t, err)
	requireShape(t, a, 5, 0)
	require.True(t, a.Empty())

	b, err := array2d.New[int](0, 7)
	require.NoError(t, err)
	requireShape(t, b, 0, 7)
	require.True(t, b.Empty())
}

func TestZeroValue_IsEmptyContainer(t *testing.T) {
	var a array2d.Array2D[string]
	requireShape(t, &a, 0, 0)
	require.True(t, a.Empty())
	require.True(t, a.IsSquare())
	a.Reset() // no-op on empty
	require.True(t, a.Empty())
}

func TestNewFilled_Scenario(t *testing.T) {
	// 3×4 filled with 42: every element reads 42.
	a, err := array2d.NewFilled(3, 4, 42)
	require.NoError(t, err)
	requireShape(t, a, 3, 4)
	for _, v := range a.AsSlice() {
		require.Equal(t, 42, v)
	}
}

func TestFromRows_Scenario(t *testing.T) {
	a, err := array2d.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	requireShape(t, a, 2, 3)
	require.Equal(t, []int{1, 2, 3}, a.Row(0))
	require.Equal(t, []int{4, 5, 6}, a.Row(1))

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, array2d.ErrOutOfRange)
}

func TestFromRows_Empty(t *testing.T) {
	a, err := array2d.FromRows[float64](nil)
	require.NoError(t, err)
	requireShape(t, a, 0, 0)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := array2d.FromRows([][]int{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, array2d.ErrRaggedRows)
	require.ErrorIs(t, err, array2d.ErrInvalidArgument)
}

func TestFromRows_CopiesInput(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	a, err := array2d.FromRows(src)
	require.NoError(t, err)
	src[0][0] = 99
	got, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestFromFlat(t *testing.T) {
	a, err := array2d.FromFlat(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	requireShape(t, a, 2, 3)
	require.Equal(t, []int{4, 5, 6}, a.Row(1))
}

func TestFromFlat_SizeMismatch(t *testing.T) {
	_, err := array2d.FromFlat(2, 3, []int{1, 2, 3})
	require.ErrorIs(t, err, array2d.ErrSizeMismatch)
	require.ErrorIs(t, err, array2d.ErrInvalidArgument)
}

func TestClone_Independence(t *testing.T) {
	a, err := array2d.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	dup := a.Clone()
	require.True(t, array2d.Equal(a, dup))

	require.NoError(t, a.Set(0, 0, 99))
	require.False(t, array2d.Equal(a, dup))
	got, err := dup.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestSwap_ExchangesAllState(t *testing.T) {
	a, err := array2d.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := array2d.FromRows([][]int{{7, 8, 9}})
	require.NoError(t, err)

	a.Swap(b)
	requireShape(t, a, 1, 3)
	require.Equal(t, []int{7, 8, 9}, a.Row(0))
	requireShape(t, b, 2, 2)
	require.Equal(t, []int{3, 4}, b.Row(1))
}

func TestQueries(t *testing.T) {
	a, err := array2d.New[int](4, 4)
	require.NoError(t, err)
	require.True(t, a.IsSquare())
	require.False(t, a.Empty())
	require.GreaterOrEqual(t, a.Cap(), a.Size())

	b, err := array2d.New[int](2, 3)
	require.NoError(t, err)
	require.False(t, b.IsSquare())
}

func TestWithCapacity(t *testing.T) {
	a, err := array2d.New[int](2, 2, array2d.WithCapacity(64))
	require.NoError(t, err)
	requireShape(t, a, 2, 2)
	require.GreaterOrEqual(t, a.Cap(), 64)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { array2d.WithCapacity(-1) })
	require.Panics(t, func() { array2d.WithParallelThreshold(-1) })
}

func TestString(t *testing.T) {
	a, err := array2d.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", a.String())
}

func TestData_AliasesBuffer(t *testing.T) {
	a, err := array2d.FromFlat(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	a.Data()[3] = 40
	got, err := a.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 40, got)
}
