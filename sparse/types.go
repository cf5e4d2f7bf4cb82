// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the store and the kernels.
// This file intentionally contains ONLY domain-facing types; errors and
// options live in dedicated files (errors.go, options.go) per the global
// conventions.
package sparse

// Coord is the composite map key addressing a single cell. Using a pair of
// ints keeps the key compact and hash-friendly, and avoids the formatting
// pitfalls of string-concatenated keys ("1,2" vs "01,2").
// Complexity: O(1) to build; used in O(nnz) scans during arithmetic.
type Coord struct {
	Row int // zero-based row index, >= 0
	Col int // zero-based column index, >= 0
}

// Entry is a stored (row, col, value) triple, the unit of iteration for
// the kernels and the unit of the on-disk format in the codec package.
type Entry struct {
	Row   int   // zero-based row index
	Col   int   // zero-based column index
	Value int64 // stored value; may legally be zero
}

// Shape is the (rows, cols) pair describing a matrix's declared dimensions.
// Returned by Matrix.Shape and embedded into dimension-mismatch messages.
type Shape struct {
	Rows int
	Cols int
}
