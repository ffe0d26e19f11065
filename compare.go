// SPDX-License-Identifier: MIT

// Package array2d - equality and ordering.
//
// Equality and ordering live as free functions because they need element
// constraints (comparable, Ordered) that the container's own `any` parameter
// does not carry; EqualFunc is the method-form escape hatch for arbitrary
// element types.

package array2d

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Equal reports whether two containers have identical extents and all
// elements compare equal pairwise in row-major order. Two nil containers are
// equal; nil never equals non-nil. O(size).
func Equal[T comparable](a, b *Array2D[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.data, b.data)
}

// EqualFunc reports per-element equality under eq, with the same
// extents-first contract as Equal. O(size).
func (a *Array2D[T]) EqualFunc(other *Array2D[T], eq func(x, y T) bool) bool {
	if other == nil {
		return false
	}
	if a.rows != other.rows || a.cols != other.cols {
		return false
	}

	return slices.EqualFunc(a.data, other.data, eq)
}

// Compare orders two containers: by row count, then column count, then
// buffer contents lexicographically in row-major order. A dimension mismatch
// therefore decides the order before any content is examined: a container
// with fewer rows sorts first regardless of its elements. Returns -1, 0, +1.
// O(size) worst case.
func Compare[T constraints.Ordered](a, b *Array2D[T]) int {
	if d := cmp.Compare(a.rows, b.rows); d != 0 {
		return d
	}
	if d := cmp.Compare(a.cols, b.cols); d != 0 {
		return d
	}

	return slices.Compare(a.data, b.data)
}
