// Package sparse_test contains unit tests for the functional options.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nshimiyeemmy/sparsemat/sparse"
)

func TestDefaults_PermissiveBounds(t *testing.T) {
	t.Parallel()

	// Without options the write policy is permissive: out-of-bounds writes
	// grow the matrix instead of failing.
	m, err := sparse.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(3, 3, 1))
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 4, m.Cols())
}

func TestWithWorkers_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	// Nonsensical worker counts are programmer errors, surfaced as panics
	// at option construction time, not deferred into the kernel.
	assert.Panics(t, func() { sparse.WithWorkers(0) })
	assert.Panics(t, func() { sparse.WithWorkers(-3) })
	assert.NotPanics(t, func() { sparse.WithWorkers(1) })
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	// Applying WithStrictBounds twice is idempotent; the matrix stays strict.
	m, err := sparse.New(2, 2, sparse.WithStrictBounds(), sparse.WithStrictBounds())
	require.NoError(t, err)
	assert.ErrorIs(t, m.Set(5, 5, 1), sparse.ErrOutOfRange)
}
