// Package document splits puzzle input into grid blocks and sums the
// weighted fold score over all of them.
//
// Input is a sequence of grids separated by blank lines. Each grid is run
// through fold.Detect; a horizontal fold after n rows contributes 100·n,
// a vertical fold after n columns contributes n, and grids without a fold
// contribute nothing.
//
// Blocks are independent, so Summarize detects them concurrently, bounded
// by Options.Workers. Results are always reported in input order.
//
// Errors:
//
//   - grid.ErrNonRectangular (wrapped with block index and line): a block
//     has rows of different lengths.
//   - fold.ErrNegativeSmudges, ErrInvalidWorkers: invalid Options.
//   - ctx.Err(): the context was cancelled.
package document
