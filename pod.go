// SPDX-License-Identifier: MIT

// Package array2d - POD capability probe and raw-byte helpers.
//
// The bulk-mutation fast paths (Reset bit patterns, Fill's single-byte
// shortcut, Checksum) reinterpret element storage as raw bytes. That is only
// sound for element types whose layout carries no pointers: no GC references
// to corrupt, no invariants beyond the bits themselves. The verdict is
// computed once per element type and cached; Go generics cannot branch on
// type properties at instantiation time, so the dispatch happens at run time.
// Both paths (raw bytes vs per-element
// assignment) produce identical observable results for ResetBits0; the
// nonzero patterns exist only on the raw path.

package array2d

import (
	"reflect"
	"sync"
	"unsafe"
)

// trivialCache memoizes the pointer-free verdict per element type.
var trivialCache sync.Map // reflect.Type -> bool

// isTrivial reports whether T's storage can be manipulated as raw bytes:
// copied, zeroed or patterned without invoking any type-specific logic.
// The first call per type walks the layout; subsequent calls are a map hit.
func isTrivial[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := trivialCache.Load(t); ok {
		return v.(bool)
	}
	v := pointerFree(t)
	trivialCache.Store(t, v)

	return v
}

// pointerFree walks a type's layout and reports whether it contains no
// pointer-shaped words: numeric kinds, bool, and arrays/structs thereof.
// Strings, slices, maps, chans, funcs, interfaces and pointers all fail.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// sizeOf returns unsafe.Sizeof for the element type, as an int.
func sizeOf[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// rawBytes reinterprets a pointer-free element buffer as its underlying
// bytes. Caller must have verified isTrivial[T]() first.
func rawBytes[T any](buf []T) []byte {
	if len(buf) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*sizeOf[T]())
}

// byteOf returns the single storage byte of a one-byte value.
// Caller must have verified sizeOf[T]() == 1 && isTrivial[T]() first.
func byteOf[T any](v T) byte {
	return *(*byte)(unsafe.Pointer(&v))
}

// fillBytes writes one byte pattern over the whole byte span.
func fillBytes(b []byte, pat byte) {
	for i := range b {
		b[i] = pat
	}
}
