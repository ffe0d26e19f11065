// Package array2d provides a generic, contiguous, row-major two-dimensional
// array container: array-of-array ergonomics backed by a single flat buffer.
//
// 🚀 What is array2d?
//
//	A cache-friendly alternative to [][]T that keeps every element in one
//	allocation and addresses (r, c) at linear offset r*cols + c:
//		• Construction: by shape, by shape+value, from nested rows, from a flat source
//		• Access: checked At/Set with sentinel errors, unchecked Ref/Row fast paths
//		• Iteration: positional random-access cursors plus range-over-func sequences
//		• Views: whole-buffer, per-row and block slices that alias the buffer
//		• Shape ops: strong-safety Resize, cache-blocked Transpose, O(1) Swap
//		• Bulk ops: Fill, threshold-gated parallel Fill, bit-pattern Reset for POD types
//
// ✨ Why choose array2d?
//
//   - Predictable layout – row-major, contiguous, view-friendly
//   - Rock-solid contracts – every operation documents its errors and complexity
//   - Sentinel errors – match with errors.Is, no panics on user input
//   - Interop – bridges to gonum mat.Dense for numeric pipelines
//
// The container itself performs no matrix mathematics; it is storage, access
// and shape manipulation only.
//
// Quick ASCII example:
//
//	    offset: 0 1 2 3 4 5
//	    matrix: [1 2 3]
//	            [4 5 6]
//
//	a 2×3 container stores rows back to back in one buffer.
//
// Dive into the runnable examples and cmd/array2d for usage patterns.
//
//	go get github.com/qmkit/array2d
package array2d
