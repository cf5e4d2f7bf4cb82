// SPDX-License-Identifier: MIT
// Package codec: sentinel error set. Call sites wrap these with line/path
// context via fmt.Errorf("...: %w", ErrX); tests match with errors.Is.

package codec

import "errors"

var (
	// ErrFormat indicates a malformed header or element line. The wrapping
	// message identifies the 1-based line number and the raw line content.
	ErrFormat = errors.New("codec: malformed matrix text")

	// ErrNotFound indicates the source file does not exist or is unreadable
	// at the filesystem level. Deliberately distinct from ErrFormat so
	// callers can tell a missing input from a corrupt one.
	ErrNotFound = errors.New("codec: matrix file not found")

	// ErrWrite indicates the destination file could not be written
	// (permissions, full disk). No retry is attempted.
	ErrWrite = errors.New("codec: cannot write matrix file")
)
