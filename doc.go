// Package sparsemat is a small toolbox for exact, integer-valued sparse
// matrices: a dictionary-of-keys store, arithmetic kernels, and a plain
// text on-disk format.
//
// What's inside:
//
//   - sparse/ is the Matrix store (Coord-keyed map, At/Set, permissive or
//     strict growth policy) and the kernels: Add, Sub, Mul (optionally
//     parallel), Transpose, Scale.
//   - codec/  is the deterministic parser/serializer for the rows=/cols= text
//     format, plus whole-file LoadMatrix/SaveMatrix.
//   - cmd/sparsemat is a thin CLI binding the two together: load two
//     files, compute, save, with exit codes per error kind.
//
// Quick example:
//
//	a, _ := codec.LoadMatrix("a.txt")
//	b, _ := codec.LoadMatrix("b.txt")
//	c, err := sparse.Mul(a, b)
//	if err != nil { ... }           // errors.Is(err, sparse.ErrDimensionMismatch)
//	_ = codec.SaveMatrix(c, "c.txt")
//
// Everything is exact integer arithmetic: no epsilon policies, no NaN
// handling, no rounding drift. Matrices are single-owner values; kernels
// allocate fresh results and never mutate their operands.
package sparsemat
