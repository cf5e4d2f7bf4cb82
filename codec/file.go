// SPDX-License-Identifier: MIT
// Package codec: whole-file load and save on top of Parse/Serialize.
// Reads and writes are blocking single-shot operations: the entire file is
// read into memory before parsing, and the entire serialized document is
// written in one call.

package codec

import (
	"fmt"
	"os"

	"github.com/nshimiyeemmy/sparsemat/sparse"
)

// Operation tags for unified error wrapping.
const (
	opLoad = "LoadMatrix"
	opSave = "SaveMatrix"
)

// filePerm is the mode for newly created matrix files.
const filePerm = 0o644

// LoadMatrix reads the file at path and parses it into a sparse.Matrix.
// A file that does not exist or cannot be read fails with ErrNotFound;
// deliberately distinct from the ErrFormat family so callers can separate
// "missing input" from "corrupt input". opts are forwarded to sparse.New.
// Complexity: Time O(file size), Space O(file size + nnz).
func LoadMatrix(path string, opts ...sparse.Option) (*sparse.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Any filesystem-level failure maps to the not-found sentinel; the
		// underlying cause is kept in the message for diagnostics.
		return nil, fmt.Errorf("%s: %q: %v: %w", opLoad, path, err, ErrNotFound)
	}

	m, err := Parse(string(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", opLoad, path, err)
	}

	return m, nil
}

// SaveMatrix serializes m and writes it to path in a single WriteFile
// call: either the full content lands or the call fails with ErrWrite.
// No retry is attempted; the failure is surfaced as-is with the path.
// Complexity: Time O(n log n + output), Space O(output).
func SaveMatrix(m *sparse.Matrix, path string) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", opSave, err)
	}

	if err := os.WriteFile(path, []byte(Serialize(m)), filePerm); err != nil {
		return fmt.Errorf("%s: %q: %v: %w", opSave, path, err, ErrWrite)
	}

	return nil
}
