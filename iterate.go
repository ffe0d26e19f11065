// SPDX-License-Identifier: MIT

// Package array2d - traversal entry points: positional cursors and
// range-over-func sequences.
//
// All traversal is buffer-backed, not a snapshot: mutation through a mutable
// cursor or view during iteration is visible immediately, and using that
// safely is the caller's responsibility. Every entry point is restartable:
// each call produces a fresh traversal.

package array2d

import "iter"

// Begin returns a mutable cursor at the first element (row-major order).
// Begin() equals End() on an empty container. O(1).
func (a *Array2D[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: a.data, pos: 0}
}

// End returns the one-past-the-end sentinel cursor. Not dereferenceable. O(1).
func (a *Array2D[T]) End() Iterator[T] {
	return Iterator[T]{buf: a.data, pos: len(a.data)}
}

// CBegin returns a read-only cursor at the first element. O(1).
func (a *Array2D[T]) CBegin() ConstIterator[T] { return a.Begin().Const() }

// CEnd returns the read-only one-past-the-end sentinel. O(1).
func (a *Array2D[T]) CEnd() ConstIterator[T] { return a.End().Const() }

// All yields (flat offset, element) pairs over the entire buffer in row-major
// order, producing exactly Size() elements. The row/column of offset i are
// i/Cols() and i%Cols().
func (a *Array2D[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields (flat offset, element) pairs in reverse row-major order.
func (a *Array2D[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// RowValues yields the elements of one row, independent of whole-container
// iteration. The row index is unchecked (debug-assert only), like Row.
func (a *Array2D[T]) RowValues(row int) iter.Seq[T] {
	r := a.Row(row)

	return func(yield func(T) bool) {
		for i := range r {
			if !yield(r[i]) {
				return
			}
		}
	}
}
