// SPDX-License-Identifier: MIT

// Package array2d - cache-blocked transpose, in place and out of place.
//
// Both variants walk the element grid in square blocks sized so one block row
// fits a typical cache line (cacheLineBytes / element size, minimum 1),
// keeping both the read and the write stream cache-resident. The loop orders
// are fixed, so results and memory access patterns are deterministic.

package array2d

// blockSpan returns the transpose blocking factor for the element type.
func blockSpan[T any]() int {
	n := cacheLineBytes / max(1, sizeOf[T]())
	return max(1, n)
}

// Transpose transposes the container in place.
// MAIN DESCRIPTION:
//   - Square containers only: the buffer holds a fixed element count and the
//     strategy swaps symmetric positions directly, which cannot re-shape.
//
// Implementation:
//   - Stage 1: require Rows() == Cols(); else ErrNonSquare.
//   - Stage 2: blocked double loop over the upper triangle; each off-diagonal
//     pair (i,j)/(j,i) is swapped exactly once, diagonal untouched.
//
// Errors:
//   - ErrNonSquare (an ErrInvalidArgument); use Transposed for any shape.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (a *Array2D[T]) Transpose() error {
	if !a.IsSquare() {
		return opErrorf("Transpose", a.rows, a.cols, ErrNonSquare)
	}

	n := a.rows
	bs := blockSpan[T]()
	for i := 0; i < n; i += bs {
		iEnd := min(i+bs, n)
		for j := i; j < n; j += bs {
			jEnd := min(j+bs, n)
			for bi := i; bi < iEnd; bi++ {
				// Diagonal block: start past the diagonal so each pair is
				// visited exactly once.
				startJ := j
				if i == j {
					startJ = bi + 1
				}
				for bj := startJ; bj < jEnd; bj++ {
					p, q := bi*n+bj, bj*n+bi
					a.data[p], a.data[q] = a.data[q], a.data[p]
				}
			}
		}
	}

	return nil
}

// Transposed returns a new container with swapped extents and every element
// copied (i,j) → (j,i); works for any shape and leaves the receiver
// unmodified. Uses the same cache blocking as Transpose.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (a *Array2D[T]) Transposed() *Array2D[T] {
	out := &Array2D[T]{rows: a.cols, cols: a.rows, parThreshold: a.parThreshold}
	if len(a.data) == 0 {
		return out
	}
	out.data = make([]T, len(a.data))

	bs := blockSpan[T]()
	for i := 0; i < a.rows; i += bs {
		iEnd := min(i+bs, a.rows)
		for j := 0; j < a.cols; j += bs {
			jEnd := min(j+bs, a.cols)
			for bi := i; bi < iEnd; bi++ {
				for bj := j; bj < jEnd; bj++ {
					out.data[bj*a.rows+bi] = a.data[bi*a.cols+bj]
				}
			}
		}
	}

	return out
}
