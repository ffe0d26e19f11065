//go:build array2ddebug

// SPDX-License-Identifier: MIT

package array2d

import "fmt"

// boundsCheck is the armed half of the debug bounds assertion: builds tagged
// `array2ddebug` panic when idx falls outside [0, limit). Release builds use
// the no-op half in assert_off.go, keeping the unchecked fast path
// branch-free.
func boundsCheck(idx, limit int) {
	if idx < 0 || idx >= limit {
		panic(fmt.Sprintf("array2d: debug bounds assertion: index %d outside [0,%d)", idx, limit))
	}
}
