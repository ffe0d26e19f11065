// SPDX-License-Identifier: MIT

// Package array2d - contiguous row-major storage & constructors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: constructors return sentinel errors, never panic.
//   - Keep the shape invariant airtight: len(data) == rows*cols after every exported operation.
//   - One factory per construction pattern (by shape, by shape+value, nested rows, flat source).
//
// AI-Hints:
//   - Prefer Row/Ref fast paths in hot loops; At/Set are the checked boundary.
//   - The zero value of Array2D[T] is a valid, empty 0×0 container.
//   - A zero extent keeps the other extent: New[int](5, 0) is 5×0 with an empty buffer.
//
// Complexity quicksheet:
//   - New/NewFilled/FromRows/FromFlat: O(rows*cols); Clone: O(size); Swap: O(1).

package array2d

import (
	"fmt"
	"strings"
)

// Formatting literals for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Array2D is a generic, fixed-shape (at any moment) two-dimensional container
// over a single contiguous buffer.
//   - rows, cols hold the extents (each >= 0; either may be zero).
//   - data holds rows*cols elements in row-major order (offset = r*cols + c).
//   - parThreshold is the FillParallel gate resolved at construction.
//
// The zero value is a valid empty 0×0 container.
type Array2D[T any] struct {
	rows, cols   int // extents; invariant: rows >= 0 && cols >= 0
	data         []T // contiguous row-major storage; invariant: len(data) == rows*cols
	parThreshold int // FillParallel element gate; 0 means DefaultParallelThreshold
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array2D[int])(nil)

// offset maps (r, c) to the linear index in data. Row-major: r*cols + c.
func (a *Array2D[T]) offset(r, c int) int {
	return r*a.cols + c
}

// New creates a rows×cols container with zero-valued elements.
// MAIN DESCRIPTION:
//   - Public by-shape constructor with strict validation and overflow-checked
//     size arithmetic.
//
// Implementation:
//   - Stage 1: validate rows >= 0, cols >= 0; compute rows*cols with an
//     overflow guard.
//   - Stage 2: resolve options, allocate the buffer only when the product is
//     positive (a zero extent keeps the other extent with an empty buffer).
//
// Inputs:
//   - rows, cols: non-negative extents.
//   - opts: optional WithCapacity / WithParallelThreshold.
//
// Returns:
//   - *Array2D[T]: newly allocated container.
//
// Errors:
//   - ErrNegativeDimension (ErrInvalidArgument) on a negative extent.
//   - ErrOverflow when rows*cols does not fit in int.
//
// Complexity:
//   - Time O(rows*cols) zero-init, Space O(rows*cols).
func New[T any](rows, cols int, opts ...Option) (*Array2D[T], error) {
	size, err := validateShape(rows, cols)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	a := &Array2D[T]{rows: rows, cols: cols, parThreshold: o.parallelThreshold}
	if size > 0 || o.capacity > 0 {
		a.data = make([]T, size, max(size, o.capacity))
	}

	return a, nil
}

// NewFilled creates a rows×cols container with every element set to val.
// Same validation and overflow policy as New; the buffer is copy-initialized.
// Errors: ErrNegativeDimension, ErrOverflow. Complexity: O(rows*cols).
func NewFilled[T any](rows, cols int, val T, opts ...Option) (*Array2D[T], error) {
	a, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = val
	}

	return a, nil
}

// FromRows builds a container from a nested row slice.
// MAIN DESCRIPTION:
//   - Shape is inferred: row count = len(rows), column count = len(rows[0]);
//     an empty outer slice yields the 0×0 container.
//
// Implementation:
//   - Stage 1: scan every inner slice; any length differing from the first
//     fails with ErrRaggedRows.
//   - Stage 2: concatenate rows in order into one row-major buffer.
//
// Errors:
//   - ErrRaggedRows (ErrInvalidArgument) on inconsistent row lengths.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
//
// Notes:
//   - The buffer is a copy; later mutation of the input slices is not seen.
func FromRows[T any](rows [][]T, opts ...Option) (*Array2D[T], error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 {
		return &Array2D[T]{parThreshold: o.parallelThreshold}, nil
	}

	r, c := len(rows), len(rows[0])
	for i := range rows {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
	}
	size, err := checkedSize(r, c)
	if err != nil {
		return nil, err
	}

	data := make([]T, 0, max(size, o.capacity))
	for i := range rows {
		data = append(data, rows[i]...)
	}

	return &Array2D[T]{rows: r, cols: c, data: data, parThreshold: o.parallelThreshold}, nil
}

// FromFlat builds a rows×cols container from a flat row-major source.
// The source length must equal rows*cols exactly, else ErrSizeMismatch
// (an ErrInvalidArgument). The buffer is a copy of src.
// Errors: ErrNegativeDimension, ErrOverflow, ErrSizeMismatch.
// Complexity: O(rows*cols).
func FromFlat[T any](rows, cols int, src []T, opts ...Option) (*Array2D[T], error) {
	size, err := validateShape(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(src) != size {
		return nil, fmt.Errorf("len(src)=%d, want %d: %w", len(src), size, ErrSizeMismatch)
	}
	o := gatherOptions(opts...)

	a := &Array2D[T]{rows: rows, cols: cols, parThreshold: o.parallelThreshold}
	if size > 0 || o.capacity > 0 {
		a.data = make([]T, size, max(size, o.capacity))
		copy(a.data, src)
	}

	return a, nil
}

// Clone returns a deep copy: independent buffer, same extents and policy.
// Complexity: O(size).
func (a *Array2D[T]) Clone() *Array2D[T] {
	dup := &Array2D[T]{rows: a.rows, cols: a.cols, parThreshold: a.parThreshold}
	if len(a.data) > 0 {
		dup.data = make([]T, len(a.data))
		copy(dup.data, a.data)
	}

	return dup
}

// Swap exchanges all state (extents + buffer ownership) with other in O(1).
// No element-wise work; never fails. Outstanding views and iterators keep
// aliasing the buffer they were created from, which now belongs to the
// counterparty.
func (a *Array2D[T]) Swap(other *Array2D[T]) {
	a.rows, other.rows = other.rows, a.rows
	a.cols, other.cols = other.cols, a.cols
	a.data, other.data = other.data, a.data
	a.parThreshold, other.parThreshold = other.parThreshold, a.parThreshold
}

// Rows returns the number of rows. O(1).
func (a *Array2D[T]) Rows() int { return a.rows }

// Cols returns the number of columns. O(1).
func (a *Array2D[T]) Cols() int { return a.cols }

// Size returns the total element count (rows*cols). O(1).
func (a *Array2D[T]) Size() int { return len(a.data) }

// Empty reports whether the container holds no elements. O(1).
func (a *Array2D[T]) Empty() bool { return len(a.data) == 0 }

// IsSquare reports whether Rows() == Cols(). O(1).
func (a *Array2D[T]) IsSquare() bool { return a.rows == a.cols }

// Cap returns the current buffer capacity in elements. O(1).
func (a *Array2D[T]) Cap() int { return cap(a.data) }

// Data exposes the raw row-major backing buffer. The slice aliases the
// container: writes are visible immediately, and the slice is invalidated by
// any operation that swaps the buffer (Resize, Swap). Intended for bulk I/O
// and interop; prefer the typed accessors elsewhere.
func (a *Array2D[T]) Data() []T { return a.data }

// String implements fmt.Stringer for debugging: one bracketed line per row.
// Complexity: O(rows*cols) for string construction.
func (a *Array2D[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < a.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < a.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", a.data[a.offset(i, j)])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
