// SPDX-License-Identifier: MIT

// Package array2d - content fingerprinting.

package array2d

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Checksum returns a 64-bit xxHash fingerprint of the container: the two
// extents followed by the raw row-major bytes of the buffer. Equal containers
// always produce equal sums; differing sums prove differing content or shape
// (the converse is probabilistic, as with any 64-bit hash).
//
// Only pointer-free element types have a well-defined byte image; for any
// other element type Checksum returns ErrUnsupportedType.
// Complexity: O(size) bytes hashed, no per-element allocation.
func Checksum[T any](a *Array2D[T]) (uint64, error) {
	if !isTrivial[T]() {
		return 0, fmt.Errorf("Checksum: %w", ErrUnsupportedType)
	}

	h := xxhash.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(a.rows))
	binary.LittleEndian.PutUint64(dims[8:], uint64(a.cols))
	_, _ = h.Write(dims[:])
	_, _ = h.Write(rawBytes(a.data))

	return h.Sum64(), nil
}
