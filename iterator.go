// SPDX-License-Identifier: MIT

// Package array2d - positional iterators over the flat buffer.
//
// Purpose:
//   - Provide a random-access cursor with pointer-like ergonomics but without
//     raw pointers: an Iterator is an opaque (buffer, position) handle.
//   - Two instantiations of the same shape: Iterator (mutable element) and
//     ConstIterator (read-only element), with one-directional conversion
//     Iterator → ConstIterator via Const().
//
// Contract:
//   - All operations are O(1), allocation-free, and never return errors.
//   - Iterators are values; Next/Add return advanced copies and leave the
//     receiver's caller-side copy untouched.
//   - Ordering and distance are defined by position. Comparing iterators
//     obtained from different containers is meaningless (never unsafe).
//   - Iterators alias the container's buffer: they are invalidated by any
//     operation that swaps it (Resize, Swap) and must not outlive it.
//   - The zero value is the null iterator: not dereferenceable, Valid() false.

package array2d

import "cmp"

// Iterator is a random-access cursor over a container's buffer in row-major
// order, with mutable access to the referenced element.
type Iterator[T any] struct {
	buf []T // backing buffer; nil for the null iterator
	pos int // current position; len(buf) is the one-past-the-end sentinel
}

// ConstIterator is the read-only instantiation of the cursor. It offers the
// same traversal, distance and ordering surface, but no mutating access.
// There is deliberately no conversion back to Iterator.
type ConstIterator[T any] struct {
	buf []T
	pos int
}

// ---------- Iterator (mutable) ----------

// Valid reports whether the iterator is dereferenceable: non-null and within
// [0, len). The end sentinel and the null iterator are both invalid to
// dereference.
func (it Iterator[T]) Valid() bool {
	return it.buf != nil && it.pos >= 0 && it.pos < len(it.buf)
}

// Ref returns a pointer to the current element.
// Precondition: Valid(). Dereferencing the end or null iterator panics via
// the runtime bounds check.
func (it Iterator[T]) Ref() *T { return &it.buf[it.pos] }

// Value returns the current element. Precondition: Valid().
func (it Iterator[T]) Value() T { return it.buf[it.pos] }

// Set assigns v to the current element. Precondition: Valid().
func (it Iterator[T]) Set(v T) { it.buf[it.pos] = v }

// Next returns the iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Prev returns the iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}

// Add returns the iterator advanced by n positions (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the iterator moved back by n positions (n may be negative).
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// At returns a pointer to the element n positions away from the cursor,
// without moving it. Equivalent to it.Add(n).Ref().
func (it Iterator[T]) At(n int) *T { return &it.buf[it.pos+n] }

// Distance returns the signed number of positions from other to it:
// it.pos - other.pos. Both iterators must address the same buffer for the
// result to be meaningful.
func (it Iterator[T]) Distance(other Iterator[T]) int { return it.pos - other.pos }

// Compare orders two iterators by position: -1, 0 or +1. Together with Equal
// this forms a strict total order over cursors of one buffer.
func (it Iterator[T]) Compare(other Iterator[T]) int { return cmp.Compare(it.pos, other.pos) }

// Equal reports whether both iterators address the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.pos == other.pos }

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// Const converts the mutable iterator into its read-only counterpart.
// The conversion is one-directional: a ConstIterator never becomes mutable.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos}
}

// Advance is the offset+iterator spelling of Add: Advance(3, it) == it.Add(3).
func Advance[T any](n int, it Iterator[T]) Iterator[T] { return it.Add(n) }

// ---------- ConstIterator (read-only) ----------

// Valid reports whether the iterator is dereferenceable.
func (it ConstIterator[T]) Valid() bool {
	return it.buf != nil && it.pos >= 0 && it.pos < len(it.buf)
}

// Value returns the current element. Precondition: Valid().
func (it ConstIterator[T]) Value() T { return it.buf[it.pos] }

// At returns the element n positions away from the cursor, without moving it.
func (it ConstIterator[T]) At(n int) T { return it.buf[it.pos+n] }

// Next returns the iterator advanced by one position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	it.pos++
	return it
}

// Prev returns the iterator moved back by one position.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	it.pos--
	return it
}

// Add returns the iterator advanced by n positions (n may be negative).
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.pos += n
	return it
}

// Sub returns the iterator moved back by n positions (n may be negative).
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	it.pos -= n
	return it
}

// Distance returns it.pos - other.pos. Distance across the mutable and
// read-only variants goes through Iterator.Const():
//
//	cit.Distance(mit.Const())
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int { return it.pos - other.pos }

// Compare orders two iterators by position: -1, 0 or +1.
func (it ConstIterator[T]) Compare(other ConstIterator[T]) int { return cmp.Compare(it.pos, other.pos) }

// Equal reports whether both iterators address the same position.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it.pos == other.pos }

// Less reports whether it precedes other.
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool { return it.pos < other.pos }
