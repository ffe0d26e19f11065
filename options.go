// SPDX-License-Identifier: MIT

// Package array2d: functional configuration for constructors plus the reset
// policy enum. This file defines:
//   - ResetMode (bit-pattern selection for Reset),
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults + setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package array2d

// ---------- Reset policy ----------

// ResetMode selects the byte pattern written by Reset on pointer-free
// element types. For pointer-carrying element types every mode degrades to
// zero-value assignment; see Reset for the exact contract.
type ResetMode int8

const (
	// ResetBits0 clears every byte to 0x00. For all Go types the all-zero
	// byte pattern IS the zero value, so this mode is always a true reset.
	ResetBits0 ResetMode = 0

	// ResetBits1 sets every byte to 0xFF. This is a raw bit-pattern write,
	// NOT a default-value reset: it is a low-level affordance for POD types
	// representing flags/masks. Applied only to pointer-free element types.
	ResetBits1 ResetMode = -1

	// ResetSafeMax sets every byte to 0x3F, a "safe large" sentinel pattern
	// that stays positive for signed integer lanes. Same POD-only caveats as
	// ResetBits1.
	ResetSafeMax ResetMode = 0x3F
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the element count above which FillParallel
	// fans the assignment loop out across workers. At or below it,
	// FillParallel behaves exactly like Fill.
	DefaultParallelThreshold = 10_000

	// DefaultResetMode is the pattern Reset uses when no mode is supplied.
	DefaultResetMode = ResetBits0

	// DefaultCapacity is the extra capacity (in elements) reserved at
	// construction. Zero means "exactly the required size".
	DefaultCapacity = 0

	// cacheLineBytes sizes the transpose blocking so one block row fits a
	// typical cache line.
	cacheLineBytes = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "array2d: WithParallelThreshold: threshold must be non-negative"
	panicCapacityInvalid  = "array2d: WithCapacity: capacity must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// last-writer-wins. Constructors MUST panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	parallelThreshold int // element count gate for FillParallel; DefaultParallelThreshold
	capacity          int // extra reserved capacity in elements; DefaultCapacity
}

// ---------- Constructors (WithX) ----------

// WithParallelThreshold overrides the element count above which FillParallel
// runs concurrently.
// Implementation:
//   - Stage 1: validate n >= 0 (panic otherwise, programmer error).
//   - Stage 2: return a setter that writes n into Options.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - n == 0 restores DefaultParallelThreshold; to force the concurrent path
//     on small buffers pass n == 1.
//
// AI-Hints:
//   - Leave at the default unless profiling shows fill dominating; the
//     fan-out only pays for itself on large buffers.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithCapacity reserves capacity for at least n elements at construction,
// on top of whatever the requested shape needs.
// Implementation:
//   - Stage 1: validate n >= 0 (panic otherwise, programmer error).
//   - Stage 2: return a setter that writes n into Options.
//
// Complexity:
//   - Time O(1) to set; allocation happens in the constructor.
//
// Notes:
//   - Useful when the container will be resized upward soon after creation;
//     Resize still allocates a fresh buffer, but Reserve-style headroom
//     avoids growth inside append-driven helpers.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// ---------- Option resolution ----------

// gatherOptions applies user-provided Option setters on top of the documented
// defaults. Pure; stable for a given setter sequence; O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		parallelThreshold: DefaultParallelThreshold,
		capacity:          DefaultCapacity,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
