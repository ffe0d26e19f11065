// SPDX-License-Identifier: MIT

// Package array2d - row-level mutation: copy, swap, fill.
// Row indices are unchecked (debug-assert only), matching the Ref/Row tier.

package array2d

// CopyRow copies the contents of srcRow onto dstRow: exactly Cols() element
// assignments. No-op when srcRow == dstRow. Indices unchecked. O(cols).
func (a *Array2D[T]) CopyRow(srcRow, dstRow int) {
	boundsCheck(srcRow, a.rows)
	boundsCheck(dstRow, a.rows)

	if srcRow == dstRow {
		return
	}

	src := a.offset(srcRow, 0)
	dst := a.offset(dstRow, 0)
	copy(a.data[dst:dst+a.cols], a.data[src:src+a.cols])
}

// SwapRows exchanges two rows element by element. No-op when row1 == row2.
// Indices unchecked. O(cols).
func (a *Array2D[T]) SwapRows(row1, row2 int) {
	boundsCheck(row1, a.rows)
	boundsCheck(row2, a.rows)

	if row1 == row2 {
		return
	}

	off1 := a.offset(row1, 0)
	off2 := a.offset(row2, 0)
	for i := 0; i < a.cols; i++ {
		a.data[off1+i], a.data[off2+i] = a.data[off2+i], a.data[off1+i]
	}
}

// FillRow assigns val to every element of one row. Index unchecked. O(cols).
func (a *Array2D[T]) FillRow(row int, val T) {
	boundsCheck(row, a.rows)

	off := a.offset(row, 0)
	for i := off; i < off+a.cols; i++ {
		a.data[i] = val
	}
}
