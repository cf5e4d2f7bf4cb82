// SPDX-License-Identifier: MIT
// Package sparse provides the arithmetic kernels over *Matrix operands:
// addition, subtraction, multiplication, transpose, and scalar scaling.
// All kernels perform strict fail-fast validation, allocate a fresh result,
// and never mutate their operands.
//
// Notes:
//   - All kernels use the central validators and wrap failures with an
//     operation tag via opErrorf; callers match sentinels with errors.Is.
//   - Cells whose computed value is zero are kept as explicit zeros; see
//     the package zero-value policy in doc.go.

package sparse

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match. Call only when err != nil.
// Complexity: Time O(1), Space O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the
// copy-then-merge loop. Invariants (same shape, non-nil) are enforced by
// the public facades.
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	// Validate operands non-nil with identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Result shape is per-axis max of the operand shapes. After validation
	// the shapes are equal, so this degenerates to the common shape; the
	// max keeps the kernel correct should shape compatibility ever relax.
	rows, cols := a.rows, a.cols
	if b.rows > rows {
		rows = b.rows
	}
	if b.cols > cols {
		cols = b.cols
	}
	res := newResult(rows, cols)

	// Stage 1: copy every recorded cell of a into the result.
	// Stage 2: fold b's cells in at ±1; a missing result cell reads as 0.
	// Entries() gives a fixed (row, col) order; integer addition makes the
	// outcome order-independent regardless.
	for _, e := range a.Entries() {
		res.elems[Coord{Row: e.Row, Col: e.Col}] = e.Value
	}
	for _, e := range b.Entries() {
		res.elems[Coord{Row: e.Row, Col: e.Col}] += sign * e.Value
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Implementation:
//   - Stage 1: validate both operands non-nil with identical shapes.
//   - Stage 2: copy A's cells, then accumulate B's cells on top.
//
// Behavior highlights:
//   - The result's recorded set is the union of the operands' recorded
//     sets; a pair summing to zero stays stored as an explicit zero.
//
// Inputs:
//   - a, b: operands with equal declared shapes.
//
// Returns:
//   - *Matrix: new matrix with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch; the
//     wrapped message carries both shapes).
//
// Determinism:
//   - Fixed (row, col) merge order; exact integer arithmetic.
//
// Complexity:
//   - Time O((nnz(a)+nnz(b)) log nnz), Space O(nnz(a)+nnz(b)) for the result.
//
// Notes:
//   - Operands are never mutated; the result is always freshly allocated.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh
// Matrix.
// Implementation:
//   - Stage 1: validate both operands non-nil with identical shapes.
//   - Stage 2: copy A's cells, then subtract B's cells from the result.
//
// Behavior highlights:
//   - Exact inverse of Add over the integers: Sub(Add(A,B), B) reads
//     identically to A at every position.
//
// Inputs:
//   - a, b: operands with equal declared shapes.
//
// Returns:
//   - *Matrix: new matrix with C[i,j] = A[i,j] - B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch; the
//     wrapped message carries both shapes).
//
// Determinism:
//   - Fixed (row, col) merge order; exact integer arithmetic.
//
// Complexity:
//   - Time O((nnz(a)+nnz(b)) log nnz), Space O(nnz(a)+nnz(b)) for the result.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs sparse matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate A,B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: group B's cells by row, then for each cell (r1,c1,v1) of A
//     accumulate v1·v2 into C(r1,c2) for every B cell (c1,c2,v2); a
//     row-indexed join touching exactly the pairs a naive nnz×nnz cross
//     product with an inner-index filter would touch.
//   - Stage 3 (optional): with WithWorkers(n>1), partition A's rows across
//     an errgroup; each worker owns disjoint result rows via a private
//     partial map, merged after the join point.
//
// Behavior highlights:
//   - Result rows with no matching inner-dimension pairs get no recorded
//     cells at all; multiplication never fabricates entries.
//   - Cells whose accumulated product is zero (cancellation) stay stored.
//   - Parallel and serial kernels produce identical matrices: integer
//     accumulation is exact and each result row is owned by one worker.
//
// Inputs:
//   - a: left operand (p × q).
//   - b: right operand (q × r).
//   - opts: WithWorkers to parallelize; other options are ignored here.
//
// Returns:
//   - *Matrix: new (p × r) matrix with the product.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch; the
//     wrapped message carries both shapes).
//
// Determinism:
//   - Fixed (row, col) outer order in the serial kernel; the parallel
//     kernel is value-deterministic by row ownership.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b) + pairs), Space O(cells touched), where pairs
//     is the number of (a,b) cell pairs sharing an inner index.
//
// Notes:
//   - For mostly-dense operands pairs approaches nnz(a)·nnz(b)/q; this
//     kernel targets genuinely sparse inputs.
func Mul(a, b *Matrix, opts ...Option) (*Matrix, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	// Allocate the result and index b's cells by row once.
	res := newResult(a.rows, b.cols)
	byRow := make(map[int][]Entry, b.rows)
	for _, e := range b.Entries() { // ascending (row, col) within each bucket
		byRow[e.Row] = append(byRow[e.Row], e)
	}

	left := a.Entries() // sorted by (row, col): row segments are contiguous
	if o.workers <= 1 || len(left) == 0 {
		mulRange(left, byRow, res.elems)

		return res, nil
	}

	// Parallel path: round-robin contiguous row segments over the workers.
	// A result cell (r1, c2) only receives contributions from A cells in
	// row r1, so per-row partitioning keeps worker outputs disjoint.
	buckets := make([][]Entry, o.workers)
	var seg, w int
	for seg < len(left) {
		end := seg
		for end < len(left) && left[end].Row == left[seg].Row {
			end++
		}
		buckets[w%o.workers] = append(buckets[w%o.workers], left[seg:end]...)
		w++
		seg = end
	}

	partials := make([]map[Coord]int64, o.workers)
	var g errgroup.Group
	for i := range buckets {
		if len(buckets[i]) == 0 {
			continue
		}
		partials[i] = make(map[Coord]int64)
		i := i
		g.Go(func() error {
			mulRange(buckets[i], byRow, partials[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, opErrorf(opMul, err) // unreachable today; kept for the join contract
	}

	// Merge: partial maps cover disjoint result rows, so a plain copy is a merge.
	for _, p := range partials {
		for k, v := range p {
			res.elems[k] = v
		}
	}

	return res, nil
}

// mulRange accumulates the products of the given A cells against the
// row-indexed B cells into dst. dst must be private to the caller.
func mulRange(left []Entry, byRow map[int][]Entry, dst map[Coord]int64) {
	var ea, eb Entry // loop temporaries (deterministic order)
	for _, ea = range left {
		for _, eb = range byRow[ea.Col] { // inner index filter: ea.Col == eb.Row
			dst[Coord{Row: ea.Row, Col: eb.Col}] += ea.Value * eb.Value
		}
	}
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is validated non-nil and never mutated.
// Complexity: Time O(nnz), Space O(nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	res := newResult(m.cols, m.rows) // dims flipped
	for k, v := range m.elems {
		res.elems[Coord{Row: k.Col, Col: k.Row}] = v
	}

	return res, nil
}

// Scale returns a new matrix whose cells are alpha * m[i,j]. The recorded
// set is preserved: alpha == 0 yields explicit zeros at every recorded
// cell, consistent with the package zero-value policy.
// Complexity: Time O(nnz), Space O(nnz).
func Scale(m *Matrix, alpha int64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	res := newResult(m.rows, m.cols)
	for k, v := range m.elems {
		res.elems[k] = v * alpha
	}

	return res, nil
}
