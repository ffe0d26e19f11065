// SPDX-License-Identifier: MIT

package array2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qmkit/array2d"
)

func TestTransposed_Scenario(t *testing.T) {
	// 2×3 filled 1..6 row-major; transposed is 3×2 with columns become rows.
	a, err := array2d.FromFlat(2, 3, seq(6))
	require.NoError(t, err)

	tr := a.Transposed()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []int{1, 4}, tr.Row(0))
	require.Equal(t, []int{2, 5}, tr.Row(1))
	require.Equal(t, []int{3, 6}, tr.Row(2))

	// Original unchanged.
	require.Equal(t, []int{1, 2, 3}, a.Row(0))
	require.Equal(t, []int{4, 5, 6}, a.Row(1))
}

func TestTranspose_RoundTrip(t *testing.T) {
	a, err := array2d.FromFlat(5, 13, seq(65))
	require.NoError(t, err)

	require.True(t, array2d.Equal(a, a.Transposed().Transposed()))
}

func TestTranspose_InPlaceAgreesWithOutOfPlace(t *testing.T) {
	// Size exceeds the int blocking factor so multiple blocks are exercised.
	const n = 37
	a, err := array2d.FromFlat(n, n, seq(n*n))
	require.NoError(t, err)

	want := a.Transposed()
	require.NoError(t, a.Transpose())
	require.True(t, array2d.Equal(a, want))
}

func TestTranspose_DiagonalUntouched(t *testing.T) {
	a, err := array2d.FromFlat(4, 4, seq(16))
	require.NoError(t, err)
	require.NoError(t, a.Transpose())
	for i := 0; i < 4; i++ {
		got, err := a.At(i, i)
		require.NoError(t, err)
		require.Equal(t, i*4+i+1, got)
	}
}

func TestTranspose_NonSquare(t *testing.T) {
	a, err := array2d.New[int](2, 3)
	require.NoError(t, err)

	err = a.Transpose()
	require.ErrorIs(t, err, array2d.ErrNonSquare)
	require.ErrorIs(t, err, array2d.ErrInvalidArgument)
	// Failed transpose leaves the container untouched.
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 3, a.Cols())
}

func TestTranspose_TrivialShapes(t *testing.T) {
	one, err := array2d.FromFlat(1, 1, []int{5})
	require.NoError(t, err)
	require.NoError(t, one.Transpose())
	require.Equal(t, []int{5}, one.Row(0))

	empty, err := array2d.New[int](0, 0)
	require.NoError(t, err)
	require.NoError(t, empty.Transpose())

	wide, err := array2d.FromFlat(1, 4, seq(4))
	require.NoError(t, err)
	tall := wide.Transposed()
	require.Equal(t, 4, tall.Rows())
	require.Equal(t, 1, tall.Cols())
	require.Equal(t, []int{3}, tall.Row(2))
}

func TestTransposed_LargeElements(t *testing.T) {
	// Element wider than a cache line forces the minimum blocking factor.
	type wide struct{ a [17]uint64 }
	m, err := array2d.New[wide](3, 2)
	require.NoError(t, err)
	m.Row(1)[1] = wide{a: [17]uint64{1: 9}}

	tr := m.Transposed()
	require.Equal(t, uint64(9), tr.Row(1)[1].a[1])
}
