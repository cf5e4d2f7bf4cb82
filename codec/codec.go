// SPDX-License-Identifier: MIT
// Package codec: text-format parser and serializer. File I/O lives in
// file.go; this file is pure string → matrix → string.

package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nshimiyeemmy/sparsemat/sparse"
)

// Operation tag for unified error wrapping (no magic strings). Serialize
// cannot fail and needs no tag.
const opParse = "Parse"

// Line patterns. Header values are bare digit runs (non-negative by
// construction); element values may carry a sign. Whitespace inside the
// parentheses and after commas is tolerated per the format contract.
var (
	reRows  = regexp.MustCompile(`^rows=(\d+)$`)
	reCols  = regexp.MustCompile(`^cols=(\d+)$`)
	reEntry = regexp.MustCompile(`^\(\s*(\d+)\s*,\s*(\d+)\s*,\s*([+-]?\d+)\s*\)$`)
)

// Parse builds a sparse.Matrix from text in the package format.
// Implementation:
//   - Stage 1: split into lines; require the two header lines; match
//     rows=/cols= and parse the dimensions defensively.
//   - Stage 2: construct an empty matrix and replay every element line
//     through Matrix.Set, skipping blanks; any non-matching line aborts
//     with its 1-based number and raw content.
//
// Behavior highlights:
//   - Header dimensions are initial hints: an element line addressing
//     indices beyond them grows the matrix (permissive default). Under
//     sparse.WithStrictBounds such a line fails the parse with the
//     write error wrapped in its line context instead.
//   - Fail-fast: the first violation aborts; no partial matrix escapes.
//
// Inputs:
//   - text: the whole document; line terminators are '\n' ('\r' is
//     stripped with surrounding whitespace per line).
//   - opts: construction options forwarded to sparse.New.
//
// Returns:
//   - *sparse.Matrix: the fully populated matrix.
//
// Errors:
//   - ErrFormat for structural violations; sparse.ErrOutOfRange (wrapped
//     with line context) for strict-bounds rejections.
//
// Complexity:
//   - Time O(len(text)), Space O(nnz).
func Parse(text string, opts ...sparse.Option) (*sparse.Matrix, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%s: not enough lines for dimensions: %w", opParse, ErrFormat)
	}

	// Header: rows= then cols=, each on its own line, whitespace-trimmed.
	rows, err := parseHeaderLine(reRows, lines[0], 1)
	if err != nil {
		return nil, err
	}
	cols, err := parseHeaderLine(reCols, lines[1], 2)
	if err != nil {
		return nil, err
	}

	m, err := sparse.New(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opParse, err) // unreachable for digit-run dims; defensive
	}

	// Element lines start at line 3 (1-indexed). Blank lines are ignored.
	var (
		i       int    // line index within lines
		raw     string // untrimmed line content for diagnostics
		trimmed string // whitespace-trimmed working copy
	)
	for i = 2; i < len(lines); i++ {
		raw = lines[i]
		trimmed = strings.TrimSpace(raw)
		if trimmed == "" {
			continue // blank line between elements
		}

		match := reEntry.FindStringSubmatch(trimmed)
		if match == nil {
			return nil, fmt.Errorf("%s: line %d: %q: %w", opParse, i+1, raw, ErrFormat)
		}

		// Defensive numeric parsing: the pattern constrains to digits, but
		// out-of-range literals still fail here rather than truncating.
		row, rowErr := strconv.Atoi(match[1])
		col, colErr := strconv.Atoi(match[2])
		val, valErr := strconv.ParseInt(match[3], 10, 64)
		if rowErr != nil || colErr != nil || valErr != nil {
			return nil, fmt.Errorf("%s: line %d: %q: %w", opParse, i+1, raw, ErrFormat)
		}

		if err = m.Set(row, col, val); err != nil {
			// Strict-bounds rejection: keep the line context, preserve the
			// underlying sentinel for errors.Is.
			return nil, fmt.Errorf("%s: line %d: %q: %w", opParse, i+1, raw, err)
		}
	}

	return m, nil
}

// parseHeaderLine matches one mandatory header line against re and returns
// its numeric value. lineNo is 1-based and included in diagnostics.
func parseHeaderLine(re *regexp.Regexp, raw string, lineNo int) (int, error) {
	match := re.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return 0, fmt.Errorf("%s: line %d: invalid dimension format %q: %w", opParse, lineNo, raw, ErrFormat)
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: line %d: invalid dimension format %q: %w", opParse, lineNo, raw, ErrFormat)
	}

	return n, nil
}

// Serialize renders m in the package format: the two header lines followed
// by one "(row, col, value)" line per recorded cell in ascending
// (row, col) order. The output carries no trailing whitespace, so
// Parse(Serialize(m)) reproduces m's shape and recorded set exactly.
// Complexity: Time O(n log n) for the sorted snapshot, Space O(output).
func Serialize(m *sparse.Matrix) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d\ncols=%d", m.Rows(), m.Cols())
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, "\n(%d, %d, %d)", e.Row, e.Col, e.Value)
	}

	return b.String()
}
