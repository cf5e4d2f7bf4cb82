// Package sparse implements an integer-valued sparse matrix as a
// dictionary-of-keys store: only recorded entries occupy memory, every
// other position reads as zero.
//
// What:
//
//   - Matrix: a (rows × cols) grid keyed by Coord{Row, Col}; At never
//     fails, Set auto-grows the declared shape on out-of-bounds writes
//     (or rejects them under WithStrictBounds).
//   - Arithmetic kernels: Add, Sub, Mul, Transpose, Scale. Pure
//     functions allocating a fresh result, operands never mutated.
//   - Deterministic iteration: Entries returns stored triples in
//     ascending (row, col) order, making serialization and comparisons
//     reproducible.
//
// Why:
//
//   - Grids where nnz ≪ rows×cols: adjacency-like data, tabular deltas,
//     incremental accumulation into mostly-empty planes.
//   - Exact integer arithmetic: no epsilon policy, no rounding drift.
//
// Complexity (n = nnz of the operand(s)):
//
//   - At/Set:      O(1) expected (hash lookup).
//   - Entries:     O(n log n) (sorted snapshot).
//   - Add/Sub:     O((nnz(a)+nnz(b)) log nnz) via sorted snapshots.
//   - Mul:         O(nnz(a) + nnz(b) + pairs) with a row-indexed join,
//     where pairs is the number of (a,b) entry pairs sharing an inner
//     index, never worse than the naive nnz(a)×nnz(b) cross product.
//
// Options:
//
//   - WithStrictBounds: out-of-declared-bounds writes fail with
//     ErrOutOfRange instead of growing the shape.
//   - WithWorkers(n): parallelize Mul across n workers; the numeric
//     result is identical to the serial kernel.
//
// Errors:
//
//   - ErrNilMatrix: a nil *Matrix operand was passed to a kernel.
//   - ErrBadShape: a constructor received a negative dimension.
//   - ErrOutOfRange: negative index, or out-of-bounds write in strict mode.
//   - ErrDimensionMismatch: incompatible operand shapes for Add/Sub/Mul.
//
// Zero-value policy: Set(r, c, 0) stores an explicit zero and Add/Sub keep
// cells whose sum happens to be zero. Absent and explicit-zero cells are
// indistinguishable through At and Equal; call Prune to drop the explicit
// zeros when true sparsity matters.
package sparse
