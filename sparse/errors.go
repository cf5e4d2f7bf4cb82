// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or cols). Zero-dimension matrices are legal.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a negative index or, under strict bounds,
	// a write beyond the declared shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Add/Sub require equal shapes, Mul requires a.Cols == b.Rows.
	// Wrapping call sites include both operand shapes in the message.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
