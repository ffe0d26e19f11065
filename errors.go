// SPDX-License-Identifier: MIT
// Package array2d: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// container. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for armed debug assertions and nonsensical option
// constructor arguments (programmer errors).

package array2d

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "array2d: ..." for consistency and to allow
// easy grepping across logs. The taxonomy roots below (ErrInvalidArgument,
// ErrOverflow, ErrOutOfRange) classify every failure; the specific sentinels
// are pre-wrapped onto their root, so
//
//	errors.Is(err, ErrNonSquare)       // specific condition
//	errors.Is(err, ErrInvalidArgument) // whole family
//
// both hold. Call sites add method/index context with opErrorf; callers still
// match via errors.Is through the %w chain.

// Taxonomy roots.
var (
	// ErrInvalidArgument is the family sentinel for structurally invalid
	// input: negative dimensions, ragged nested rows, mismatched flat
	// sources, in-place transpose of a non-square container.
	ErrInvalidArgument = errors.New("array2d: invalid argument")

	// ErrOverflow indicates that rows*cols cannot be represented in int
	// during construction, reservation, or resize.
	ErrOverflow = errors.New("array2d: size overflow")

	// ErrOutOfRange indicates that a checked accessor received a row or
	// column index outside current bounds. The wrapped message carries both
	// the attempted indices and the current bounds for diagnostics.
	ErrOutOfRange = errors.New("array2d: index out of range")
)

// Specific sentinels, pre-wrapped onto their taxonomy root.
var (
	// ErrNegativeDimension is returned when a sizing operation receives a
	// negative row or column count.
	ErrNegativeDimension = fmt.Errorf("%w: negative dimension", ErrInvalidArgument)

	// ErrRaggedRows is returned by FromRows when inner rows have differing
	// lengths; every row must match the first row's length.
	ErrRaggedRows = fmt.Errorf("%w: inconsistent row lengths", ErrInvalidArgument)

	// ErrSizeMismatch is returned by FromFlat when the source length does
	// not equal rows*cols.
	ErrSizeMismatch = fmt.Errorf("%w: source length does not match dimensions", ErrInvalidArgument)

	// ErrNonSquare is returned by the in-place Transpose on a container with
	// Rows() != Cols(). Use Transposed for arbitrary shapes.
	ErrNonSquare = fmt.Errorf("%w: container is not square", ErrInvalidArgument)

	// ErrUnsupportedType marks an operation that requires a pointer-free
	// (trivially byte-addressable) element type, e.g. Checksum.
	ErrUnsupportedType = errors.New("array2d: unsupported element type")
)

// opErrorf wraps an underlying error with method context and the callsite
// indices, preserving the sentinel via %w.
func opErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Array2D.%s(%d,%d): %w", method, row, col, err)
}

// boundsErrorf builds the checked-access failure: the attempted indices and
// the current bounds travel in the message, the sentinel in the chain.
func boundsErrorf(method string, row, col, rows, cols int) error {
	return fmt.Errorf("Array2D.%s: index (%d,%d) outside [0,%d)x[0,%d): %w",
		method, row, col, rows, cols, ErrOutOfRange)
}
