// SPDX-License-Identifier: MIT

// Package array2d - bulk mutation: Fill, FillParallel, Reset.

package array2d

import (
	conciter "github.com/sourcegraph/conc/iter"
)

// Fill assigns val to every element.
// Implementation:
//   - Stage 1: single-byte pointer-free element types take a raw byte fill
//     (the memset analogue).
//   - Stage 2: every other type takes the plain per-element assignment loop.
//
// Never fails. Complexity: O(size).
func (a *Array2D[T]) Fill(val T) {
	if len(a.data) == 0 {
		return
	}

	if sizeOf[T]() == 1 && isTrivial[T]() {
		fillBytes(rawBytes(a.data), byteOf(val))
		return
	}

	for i := range a.data {
		a.data[i] = val
	}
}

// FillParallel assigns val to every element, identically to Fill, but for
// buffers above the parallel threshold the assignments fan out across
// workers with NO ordering between individual element writes.
//
// Behavior highlights:
//   - Each element is written exactly once, so correctness never depends on
//     ordering, only on T's assignment being race-free when performed
//     independently per element (true for plain-data types; element types
//     with shared internal state are the caller's responsibility).
//   - At or below the threshold (DefaultParallelThreshold, overridable via
//     WithParallelThreshold) this is exactly Fill.
//
// Complexity: O(size) work, parallel span O(size/workers).
func (a *Array2D[T]) FillParallel(val T) {
	threshold := a.parThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	if len(a.data) <= threshold {
		a.Fill(val)
		return
	}

	conciter.ForEach(a.data, func(p *T) { *p = val })
}

// Reset returns every element to a known state selected by mode
// (DefaultResetMode when omitted; extra modes beyond the first are ignored).
//
// Behavior highlights:
//   - Pointer-free element types: the buffer is overwritten with the mode's
//     raw byte pattern. ResetBits0 writes 0x00, which for every Go type IS
//     the zero value. ResetBits1 (0xFF) and ResetSafeMax (0x3F) are raw
//     bit-pattern writes, a low-level affordance for flag/mask types, NOT a
//     zero-value reset.
//   - Pointer-carrying element types: always per-element zero-value
//     assignment, regardless of the requested mode.
//   - No-op on an empty container. Never fails.
//
// Complexity: O(size).
func (a *Array2D[T]) Reset(mode ...ResetMode) {
	if len(a.data) == 0 {
		return
	}
	m := DefaultResetMode
	if len(mode) > 0 {
		m = mode[0]
	}

	if isTrivial[T]() {
		if m == ResetBits0 {
			clear(a.data)
			return
		}
		fillBytes(rawBytes(a.data), byte(m))
		return
	}

	var zero T
	for i := range a.data {
		a.data[i] = zero
	}
}
