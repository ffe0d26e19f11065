// SPDX-License-Identifier: MIT

// Package array2d - gonum interop.
//
// Array2D[float64] and gonum's mat.Dense share the same row-major flat
// layout, so the bridge is a buffer copy in each direction. The container
// performs no linear algebra itself; these adapters hand the data to the
// ecosystem that does.

package array2d

import "gonum.org/v1/gonum/mat"

// ToDense copies an Array2D[float64] into a gonum *mat.Dense of the same
// shape. An empty container maps to the empty Dense (mat.NewDense rejects
// zero extents). The result owns its data; later container mutation is not
// reflected. O(size).
func ToDense(a *Array2D[float64]) *mat.Dense {
	if a.Empty() {
		return &mat.Dense{}
	}

	buf := make([]float64, len(a.data))
	copy(buf, a.data)

	return mat.NewDense(a.rows, a.cols, buf)
}

// FromDense copies any gonum mat.Matrix into a new Array2D[float64] of the
// same shape via the generic At walk, so every mat implementation (Dense,
// views, symmetric wrappers) is accepted. O(rows*cols).
func FromDense(m mat.Matrix) *Array2D[float64] {
	r, c := m.Dims()
	out := &Array2D[float64]{rows: r, cols: c}
	if r == 0 || c == 0 {
		return out
	}

	out.data = make([]float64, r*c)
	for i := 0; i < r; i++ {
		off := i * c
		for j := 0; j < c; j++ {
			out.data[off+j] = m.At(i, j)
		}
	}

	return out
}
