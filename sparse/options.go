// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for matrix construction and the
// multiply kernel. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictBounds controls the write policy. false ⇒ an
	// out-of-declared-bounds Set grows the shape to (index+1); the declared
	// dimensions act as initial hints, not hard limits. This leniency is
	// relied upon by the codec parser, where element lines may exceed the
	// header's stated dimensions.
	DefaultStrictBounds = false

	// DefaultWorkers is the worker count for the Mul kernel. 1 ⇒ serial
	// row-indexed join; n>1 ⇒ a's rows are partitioned across n goroutines.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const panicWorkersInvalid = "sparse: WithWorkers: n must be >= 1"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	strictBounds bool // DefaultStrictBounds
	workers      int  // DefaultWorkers; >= 1
}

// ---------- Constructors (WithX) ----------

// WithStrictBounds rejects writes beyond the declared shape.
// Implementation:
//   - Stage 1: set strictBounds=true.
//
// Behavior highlights:
//   - Set(r, c, v) with r >= Rows() or c >= Cols() returns ErrOutOfRange
//     instead of growing the matrix; the parser fails on element lines
//     exceeding the header dimensions.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The policy is fixed at construction; arithmetic results are always
//     built permissively since kernels derive shapes up front.
func WithStrictBounds() Option {
	return func(o *Options) { o.strictBounds = true }
}

// WithWorkers sets the goroutine count for the Mul kernel.
// Implementation:
//   - Stage 1: validate n >= 1 (panic otherwise, programmer error).
//   - Stage 2: return a setter writing n into Options.
//
// Behavior highlights:
//   - n == 1 keeps the serial kernel; n > 1 partitions the left operand's
//     rows across workers, each owning disjoint result rows. The numeric
//     result is identical either way.
//
// Inputs:
//   - n: worker count, >= 1.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of documented
// defaults. Last-writer-wins semantics; stable for a given setter sequence.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		strictBounds: DefaultStrictBounds,
		workers:      DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
