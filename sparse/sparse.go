// Package sparse provides the dictionary-of-keys store backing all kernels.
// Matrix keeps only recorded cells in a Coord-keyed map; every absent
// position reads as zero through At.
package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is an integer-valued sparse matrix. rows and cols are the declared
// dimensions (they may grow, see Set); elems holds the recorded cells.
// Matrix is NOT safe for concurrent mutation; each value owns its map
// exclusively and kernels allocate fresh results instead of aliasing.
type Matrix struct {
	rows, cols int             // declared shape, each >= 0
	elems      map[Coord]int64 // recorded cells; missing key reads as 0
	strict     bool            // reject out-of-declared-bounds writes
}

// New creates an empty rows×cols matrix with no recorded entries.
// Stage 1 (Validate): reject negative dimensions (zero is legal).
// Stage 2 (Prepare): allocate the backing map.
// Stage 3 (Finalize): return the matrix or ErrBadShape.
// Complexity: O(1).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	// Return initialized Matrix
	return &Matrix{
		rows:   rows,
		cols:   cols,
		elems:  make(map[Coord]int64),
		strict: o.strictBounds,
	}, nil
}

// newResult allocates a permissive container for kernel results; shapes are
// derived by the kernels, so strict bounds never apply here.
func newResult(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, elems: make(map[Coord]int64)}
}

// Rows returns the declared number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the declared number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols // return stored column count
}

// Shape returns the declared (rows, cols) pair.
// Complexity: O(1).
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// NNZ returns the number of recorded cells, explicit zeros included.
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return len(m.elems)
}

// At retrieves the value at (row, col), or 0 when no cell is recorded
// there. At never fails: indices beyond the declared shape (or negative)
// simply read as zero; reads cannot violate any invariant.
// Complexity: O(1) expected.
func (m *Matrix) At(row, col int) int64 {
	return m.elems[Coord{Row: row, Col: col}] // missing key yields the zero value
}

// Set records value v at (row, col), overwriting any prior cell.
// Stage 1 (Validate): negative indices always fail; under strict bounds an
// index beyond the declared shape fails too.
// Stage 2 (Grow): in permissive mode, row >= Rows() grows rows to row+1,
// symmetrically for columns. The declared shape is a hint, not a limit.
// Stage 3 (Execute): write the cell. Explicit zeros are stored; use Prune
// to drop them.
// Complexity: O(1) expected.
func (m *Matrix) Set(row, col int, v int64) error {
	// Validate indices
	if row < 0 || col < 0 {
		return fmt.Errorf("Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if m.strict && (row >= m.rows || col >= m.cols) {
		return fmt.Errorf("Set(%d,%d): beyond declared %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}

	// Auto-grow the declared shape on out-of-bounds writes (permissive mode).
	if row >= m.rows {
		m.rows = row + 1
	}
	if col >= m.cols {
		m.cols = col + 1
	}

	// Assign value
	m.elems[Coord{Row: row, Col: col}] = v

	return nil
}

// Entries returns a snapshot of all recorded cells in ascending
// (row, col) order. The deterministic order makes serialization and
// round-trip comparisons reproducible; callers may mutate the slice freely.
// Complexity: O(n log n) for n recorded cells.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.elems))
	for k, v := range m.elems {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	// Fixed (row, col) ascending order for reproducible output.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// Clone returns a deep copy of the matrix, including its bounds policy.
// The returned Matrix is independent of the original.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	// Allocate a fresh map and copy every recorded cell.
	elems := make(map[Coord]int64, len(m.elems))
	for k, v := range m.elems {
		elems[k] = v
	}

	return &Matrix{rows: m.rows, cols: m.cols, elems: elems, strict: m.strict}
}

// Equal reports whether m and other have the same declared shape and the
// same value at every position, treating absent cells as zero. An explicit
// zero and a missing cell therefore compare equal, so nnz may differ between
// two equal matrices.
// Complexity: O(nnz(m) + nnz(other)) expected.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other // both nil compare equal; nil vs non-nil do not
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	// Every cell of m must read identically from other...
	for k, v := range m.elems {
		if other.elems[k] != v {
			return false
		}
	}
	// ...and vice versa, to catch cells recorded only in other.
	for k, v := range other.elems {
		if m.elems[k] != v {
			return false
		}
	}

	return true
}

// Prune removes all explicitly stored zero cells and reports how many were
// dropped. Reads are unaffected (absent and explicit zero are
// indistinguishable through At); only NNZ and the serialized form shrink.
// Complexity: O(nnz).
func (m *Matrix) Prune() int {
	var dropped int
	for k, v := range m.elems {
		if v == 0 {
			delete(m.elems, k) // deleting during range is safe in Go maps
			dropped++
		}
	}

	return dropped
}

// String implements fmt.Stringer for debugging: declared shape, nnz, and
// the recorded cells in deterministic order.
// Complexity: O(n log n) for the sorted snapshot.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d nnz=%d", m.rows, m.cols, len(m.elems))
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, " (%d,%d,%d)", e.Row, e.Col, e.Value)
	}

	return b.String()
}
