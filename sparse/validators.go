// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single, canonical source of truth for operand validation.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (wrapped with a validator tag) so call
//     sites can wrap uniformly with an operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and O(1).

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal declared
// dimensions. Both operand shapes are included in the message so callers
// can report a precise diagnostic.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (message carries both shapes).
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) →
// SameShape used by the Add/Sub kernels.
//
// Errors: combines ErrNilMatrix and ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}
