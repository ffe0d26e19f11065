// SPDX-License-Identifier: MIT

// Package array2d - element access: checked boundary and unchecked fast path.
//
// Two tiers, on purpose:
//   - At/AtRef/Set validate indices and return ErrOutOfRange with the
//     attempted indices and current bounds in the message.
//   - Ref/Row perform no bounds checks in normal builds; violating their
//     preconditions is the caller's bug. Builds tagged `array2ddebug` arm
//     panic-on-bounds assertions (see assert_debug.go).

package array2d

// At retrieves the element at (row, col) with bounds checking.
// Errors: ErrOutOfRange when row∉[0,Rows()) or col∉[0,Cols()).
// Complexity: O(1).
func (a *Array2D[T]) At(row, col int) (T, error) {
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		var zero T
		return zero, boundsErrorf("At", row, col, a.rows, a.cols)
	}

	return a.data[a.offset(row, col)], nil
}

// AtRef retrieves a pointer to the element at (row, col) with bounds
// checking. The pointer aliases the buffer and is invalidated by any
// operation that swaps it (Resize, Swap).
// Errors: ErrOutOfRange. Complexity: O(1).
func (a *Array2D[T]) AtRef(row, col int) (*T, error) {
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		return nil, boundsErrorf("AtRef", row, col, a.rows, a.cols)
	}

	return &a.data[a.offset(row, col)], nil
}

// Set assigns v at (row, col) with bounds checking.
// Errors: ErrOutOfRange. Complexity: O(1).
func (a *Array2D[T]) Set(row, col int, v T) error {
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		return boundsErrorf("Set", row, col, a.rows, a.cols)
	}
	a.data[a.offset(row, col)] = v

	return nil
}

// Ref returns a pointer to the element at (row, col) WITHOUT bounds checks.
// Precondition: 0 <= row < Rows() && 0 <= col < Cols(); violating it is
// undefined behavior at the API level (the underlying slice may still trap,
// or silently hit a neighboring element when only one index is off).
// This is the branch-free hot path; use At/Set at trust boundaries.
// Complexity: O(1).
func (a *Array2D[T]) Ref(row, col int) *T {
	boundsCheck(row, a.rows)
	boundsCheck(col, a.cols)

	return &a.data[a.offset(row, col)]
}
