// Package sparse_test contains unit tests for the dictionary-of-keys store.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nshimiyeemmy/sparsemat/sparse"
)

// mustMatrix builds a rows×cols matrix and replays the given
// (row, col, value) triples through Set, failing the test on any error.
func mustMatrix(t *testing.T, rows, cols int, entries ...[3]int64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(rows, cols)
	require.NoError(t, err, "sparse.New(%d,%d)", rows, cols)
	for _, e := range entries {
		require.NoError(t, m.Set(int(e[0]), int(e[1]), e[2]), "Set(%d,%d,%d)", e[0], e[1], e[2])
	}

	return m
}

func TestNew_ShapeValidation(t *testing.T) {
	t.Parallel()

	// Zero dimensions are legal; the matrix is just empty.
	m, err := sparse.New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Equal(t, 0, m.NNZ())

	// Negative dimensions are a programmer error surfaced as ErrBadShape.
	_, err = sparse.New(-1, 3)
	assert.ErrorIs(t, err, sparse.ErrBadShape, "negative rows must error")
	_, err = sparse.New(3, -1)
	assert.ErrorIs(t, err, sparse.ErrBadShape, "negative cols must error")
}

func TestAt_NeverFails(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, [3]int64{0, 1, 7})
	assert.Equal(t, int64(7), m.At(0, 1), "stored cell reads back")
	assert.Equal(t, int64(0), m.At(1, 0), "absent cell reads zero")
	assert.Equal(t, int64(0), m.At(100, 100), "beyond declared shape reads zero")
	assert.Equal(t, int64(0), m.At(-1, -1), "negative indices read zero")
}

func TestSet_GrowthOnWrite(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2)
	require.NoError(t, m.Set(5, 5, 1))

	// The declared shape grows to index+1 on both axes.
	assert.Equal(t, 6, m.Rows(), "rows must grow to 6")
	assert.Equal(t, 6, m.Cols(), "cols must grow to 6")
	assert.Equal(t, int64(1), m.At(5, 5))

	// Growth is per-axis: a tall write leaves cols untouched.
	require.NoError(t, m.Set(9, 0, 2))
	assert.Equal(t, 10, m.Rows())
	assert.Equal(t, 6, m.Cols())
}

func TestSet_NegativeIndex(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2)
	assert.ErrorIs(t, m.Set(-1, 0, 1), sparse.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), sparse.ErrOutOfRange)
	assert.Equal(t, 0, m.NNZ(), "failed writes must not record cells")
}

func TestSet_StrictBounds(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(2, 2, sparse.WithStrictBounds())
	require.NoError(t, err)

	// In-bounds writes behave normally.
	require.NoError(t, m.Set(1, 1, 4))
	assert.Equal(t, int64(4), m.At(1, 1))

	// Out-of-bounds writes are rejected instead of growing the shape.
	err = m.Set(2, 0, 1)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange, "strict mode must reject the write")
	assert.Equal(t, 2, m.Rows(), "shape must not grow on a rejected write")
	assert.Equal(t, 2, m.Cols())
}

func TestSet_OverwriteAndExplicitZero(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, [3]int64{0, 0, 5})
	require.NoError(t, m.Set(0, 0, 9))
	assert.Equal(t, int64(9), m.At(0, 0), "Set overwrites the prior value")
	assert.Equal(t, 1, m.NNZ())

	// Writing zero records an explicit zero cell; it is not pruned.
	require.NoError(t, m.Set(0, 0, 0))
	assert.Equal(t, int64(0), m.At(0, 0))
	assert.Equal(t, 1, m.NNZ(), "explicit zero stays recorded")
}

func TestEntries_DeterministicOrder(t *testing.T) {
	t.Parallel()

	// Insert in scrambled order; Entries must come back (row, col) ascending.
	m := mustMatrix(t, 3, 3,
		[3]int64{2, 0, 1},
		[3]int64{0, 2, 2},
		[3]int64{0, 0, 3},
		[3]int64{1, 1, 4},
	)
	want := []sparse.Entry{
		{Row: 0, Col: 0, Value: 3},
		{Row: 0, Col: 2, Value: 2},
		{Row: 1, Col: 1, Value: 4},
		{Row: 2, Col: 0, Value: 1},
	}
	assert.Equal(t, want, m.Entries())
}

func TestClone_Independence(t *testing.T) {
	t.Parallel()

	orig := mustMatrix(t, 2, 2, [3]int64{0, 0, 1})
	cp := orig.Clone()
	require.True(t, orig.Equal(cp), "clone must compare equal to the original")

	// Mutating the clone must not leak into the original.
	require.NoError(t, cp.Set(1, 1, 9))
	assert.Equal(t, int64(0), orig.At(1, 1))
	assert.Equal(t, int64(9), cp.At(1, 1))
}

func TestEqual_Semantics(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, [3]int64{0, 0, 1})
	b := mustMatrix(t, 2, 2, [3]int64{0, 0, 1})
	assert.True(t, a.Equal(b))

	// An explicit zero and an absent cell compare equal.
	require.NoError(t, b.Set(1, 1, 0))
	assert.True(t, a.Equal(b), "explicit zero must read as absent")
	assert.True(t, b.Equal(a), "equality must be symmetric")

	// Differing shapes or values do not.
	c := mustMatrix(t, 2, 3, [3]int64{0, 0, 1})
	assert.False(t, a.Equal(c), "shape difference must break equality")
	require.NoError(t, b.Set(1, 1, 5))
	assert.False(t, a.Equal(b), "value difference must break equality")
}

func TestPrune_DropsExplicitZeros(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2,
		[3]int64{0, 0, 0},
		[3]int64{0, 1, 2},
		[3]int64{1, 1, 0},
	)
	require.Equal(t, 3, m.NNZ())

	dropped := m.Prune()
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 1, m.NNZ())
	assert.Equal(t, int64(0), m.At(0, 0), "pruned cell still reads zero")
	assert.Equal(t, int64(2), m.At(0, 1), "non-zero cells survive pruning")
}

func TestString_Format(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 3, [3]int64{1, 2, -5}, [3]int64{0, 0, 1})
	assert.Equal(t, "2x3 nnz=2 (0,0,1) (1,2,-5)", m.String())
}
