// Package grid holds the immutable, rectangular character grids that the
// fold detector works on.
//
// What:
//
//   - Grid wraps a rectangular block of runes parsed from text.
//   - Rows are read as-is; columns are built by transposition.
//   - Lines(axis) exposes either view as a [][]rune sequence of lines.
//
// Why:
//
//   - Mirror puzzles: find reflection lines in ASCII maps.
//   - Any symbol set works; cells are only ever compared for equality.
//
// Complexity:
//
//   - Parse, New:   O(W×H) time and memory (deep copy).
//   - Rows:         O(W×H) (copy).
//   - Columns:      O(W×H) (transpose).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
