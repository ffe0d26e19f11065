// SPDX-License-Identifier: MIT
// Package array2d: canonical dimension validation and overflow-checked size
// arithmetic. Every sizing entry point (construction, Reserve, Resize)
// delegates here so the shape policy lives in exactly one place.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package array2d

import (
	"fmt"
	"math"
)

// Dimension name tags used in validation error context.
const (
	dimRows = "rows"
	dimCols = "cols"
)

// validateDimension rejects negative extents.
// Returns ErrNegativeDimension (an ErrInvalidArgument) wrapped with the
// dimension name; zero is a legal extent. O(1).
func validateDimension(dim int, name string) error {
	if dim < 0 {
		return fmt.Errorf("%s=%d: %w", name, dim, ErrNegativeDimension)
	}

	return nil
}

// checkedSize computes rows*cols, guarding against int overflow.
// Either extent being zero short-circuits to 0 before the overflow check, so
// a 0×n container is always representable. Returns ErrOverflow when the
// product does not fit in int. Assumes both extents already validated
// non-negative. O(1).
func checkedSize(rows, cols int) (int, error) {
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%d*%d: %w", rows, cols, ErrOverflow)
	}

	return rows * cols, nil
}

// validateShape is the composite used by every sizing operation:
// rows → cols → overflow-checked product.
func validateShape(rows, cols int) (int, error) {
	if err := validateDimension(rows, dimRows); err != nil {
		return 0, err
	}
	if err := validateDimension(cols, dimCols); err != nil {
		return 0, err
	}

	return checkedSize(rows, cols)
}
