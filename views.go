// SPDX-License-Identifier: MIT

// Package array2d - non-owning views into the buffer and the one copying
// extraction (Col, because columns are strided).
//
// A view is a plain slice aliasing the backing buffer: writes through it are
// visible in the container immediately, and it is invalidated by any
// operation that swaps the buffer (Resize, Swap). Views carry a capped
// capacity (three-index slice), so appending to one cannot silently clobber
// the next row.

package array2d

// AsSlice returns a view over all elements in row-major order.
// Mutations through the slice mutate the container. O(1).
func (a *Array2D[T]) AsSlice() []T {
	return a.data[0:len(a.data):len(a.data)]
}

// Row returns a view of exactly Cols() contiguous elements of one row.
// The row index is unchecked (debug-assert only); violating the precondition
// is the caller's bug. O(1).
func (a *Array2D[T]) Row(row int) []T {
	boundsCheck(row, a.rows)
	off := a.offset(row, 0)

	return a.data[off : off+a.cols : off+a.cols]
}

// Col returns a newly allocated copy of one column's Rows() elements in row
// order. A copy, not a view: column elements are non-contiguous (stride =
// Cols()), so no slice can alias them. The column index is unchecked
// (debug-assert only). O(rows).
func (a *Array2D[T]) Col(col int) []T {
	boundsCheck(col, a.cols)
	out := make([]T, a.rows)
	for i := 0; i < a.rows; i++ {
		out[i] = a.data[a.offset(i, col)]
	}

	return out
}

// Block returns a row-major view of the rectangle starting at
// (startRow, startCol) spanning numRows×numCols. All bounds are unchecked
// (debug-assert only).
//
// Only when the rectangle covers whole rows (startCol == 0 && numCols ==
// Cols()) is it contiguous in memory; then the view spans all requested
// rows. Otherwise the returned view covers ONLY the first requested row's
// numCols elements. That fallback is a known limitation kept for
// compatibility, not intended semantics; a proper rectangular view would
// need a strided-view type, which this package deliberately does not build.
func (a *Array2D[T]) Block(startRow, startCol, numRows, numCols int) []T {
	boundsCheck(startRow, a.rows)
	boundsCheck(startCol, a.cols)
	boundsCheck(startRow+numRows-1, a.rows)
	boundsCheck(startCol+numCols-1, a.cols)

	// Whole contiguous rows: one span covers the entire rectangle.
	if startCol == 0 && numCols == a.cols {
		off := a.offset(startRow, 0)
		n := numRows * a.cols

		return a.data[off : off+n : off+n]
	}

	// Fallback: first requested row only.
	off := a.offset(startRow, startCol)

	return a.data[off : off+numCols : off+numCols]
}
