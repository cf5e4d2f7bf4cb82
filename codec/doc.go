// Package codec parses and serializes the textual sparse-matrix format and
// moves it to and from disk.
//
// Format (UTF-8 text):
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<row>, <col>, <value>)
//	(<row>, <col>, <value>)
//	...
//
//   - The two header lines are mandatory, in this order, each on its own
//     line; leading/trailing whitespace per line is ignored.
//   - Each element line holds a non-negative row and col and an
//     optionally-signed integer value, comma-separated, in parentheses,
//     with optional whitespace around the fields.
//   - Blank lines among the element lines are permitted and ignored.
//   - Any other non-blank line after the header is a fatal parse error
//     identifying its 1-based line number and raw content.
//   - Element lines may address indices beyond the header's declared
//     dimensions: the header is an initial hint and the matrix grows to
//     fit (pass sparse.WithStrictBounds to reject such lines instead).
//
// Serialization is deterministic: entries are emitted in ascending
// (row, col) order, so Parse(Serialize(m)) rebuilds m's exact shape and
// recorded set.
//
// Errors:
//
//   - ErrFormat: malformed header or element line; the wrapped message
//     carries the line number and offending text. Parsing aborts at the
//     first violation; no partial matrix is ever returned.
//   - ErrNotFound: the source file does not exist or cannot be read.
//   - ErrWrite: the destination file could not be written.
//
// All errors are terminal for the operation that raised them; the package
// fails fast rather than coercing bad input.
package codec
