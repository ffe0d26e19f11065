// SPDX-License-Identifier: MIT

// Package array2d - shape changes and capacity management.
//
// Resize follows build-then-commit ordering: the replacement buffer is fully
// constructed (allocated, fill-initialized, overlap copied) before the
// container's buffer and extents are swapped in one assignment. Nothing
// partially-applied is ever observable, and a failure during validation
// leaves the container exactly as it was.

package array2d

// Resize changes the extents to newRows×newCols, preserving the overlapping
// rectangle and default-initializing new positions.
// MAIN DESCRIPTION:
//   - Same validation and overflow policy as construction; strong safety.
//
// Implementation:
//   - Stage 1: validate extents and the overflow-checked product. Equal
//     shape is a no-op; a zero product clears the buffer immediately.
//   - Stage 2: allocate the new buffer, copy the overlapping
//     min(oldRows,newRows) × min(oldCols,newCols) rectangle row by row
//     (offsets differ because the column stride changed).
//   - Stage 3: commit buffer and extents together.
//
// Errors:
//   - ErrNegativeDimension, ErrOverflow; on error the container is unchanged.
//
// Notes:
//   - Outstanding views and iterators are invalidated: they keep aliasing
//     the old buffer.
//
// Complexity:
//   - Time O(newRows*newCols), Space O(newRows*newCols).
func (a *Array2D[T]) Resize(newRows, newCols int) error {
	return a.resize(newRows, newCols, nil)
}

// ResizeFill is Resize with newly introduced positions initialized to val
// instead of the zero value. Same contract otherwise.
func (a *Array2D[T]) ResizeFill(newRows, newCols int, val T) error {
	return a.resize(newRows, newCols, &val)
}

// resize is the shared implementation; fill == nil means zero-initialize.
func (a *Array2D[T]) resize(newRows, newCols int, fill *T) error {
	size, err := validateShape(newRows, newCols)
	if err != nil {
		return err
	}

	if newRows == a.rows && newCols == a.cols {
		return nil
	}

	// Zero target: clear in place, keep capacity, no allocation.
	if size == 0 {
		a.data = a.data[:0]
		a.rows, a.cols = newRows, newCols
		return nil
	}

	// Build the replacement buffer completely before touching the container.
	newData := make([]T, size)
	if fill != nil {
		for i := range newData {
			newData[i] = *fill
		}
	}

	copyRows := min(a.rows, newRows)
	copyCols := min(a.cols, newCols)
	for i := 0; i < copyRows; i++ {
		oldOff := i * a.cols
		newOff := i * newCols
		copy(newData[newOff:newOff+copyCols], a.data[oldOff:oldOff+copyCols])
	}

	// Commit.
	a.data, a.rows, a.cols = newData, newRows, newCols

	return nil
}

// Reserve ensures capacity for at least rows*cols elements without changing
// current extents or content. Same validation and overflow policy as
// construction. On error the container is unchanged.
// Complexity: O(size) when growth is needed, O(1) otherwise.
func (a *Array2D[T]) Reserve(rows, cols int) error {
	size, err := validateShape(rows, cols)
	if err != nil {
		return err
	}
	if cap(a.data) >= size {
		return nil
	}

	grown := make([]T, len(a.data), size)
	copy(grown, a.data)
	a.data = grown

	return nil
}

// ShrinkToFit is a best-effort request to release unused capacity. It never
// fails and never changes logical content; current implementation reallocates
// exactly when capacity exceeds the element count.
func (a *Array2D[T]) ShrinkToFit() {
	if cap(a.data) == len(a.data) {
		return
	}
	if len(a.data) == 0 {
		a.data = nil
		return
	}

	packed := make([]T, len(a.data))
	copy(packed, a.data)
	a.data = packed
}
