// Package fold finds the line of reflection in a character grid, allowing a
// fixed number of mismatched cells ("smudges") across the mirror.
//
// 🚀 What is a fold?
//
//	A fold is a line between two adjacent rows (Horizontal) or two adjacent
//	columns (Vertical). Folding the grid along it lays the lines on one side
//	over the lines on the other; lines with no partner past the grid edge are
//	ignored. The fold is valid when the overlapping cells disagree in exactly
//	Options.Smudges places.
//
// ✨ Key features:
//   - Horizontal first, Vertical only when no horizontal fold exists
//   - two-phase search: cheap adjacent-pair filter, then full verification
//   - symbol-agnostic: cells are compared only for equality
//   - Smudges = 0 gives the clean-mirror variant
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mirrorfold/fold"
//
//	g, _ := grid.Parse(text)
//	if f, ok := fold.Detect(g, fold.DefaultOptions()); ok {
//	  fmt.Println(f, f.Score()) // Horizontal(3) 300
//	}
//
// Algorithm (per axis, lines L[0..n-1]):
//
//  1. For i = 0..n-2, the pair (L[i], L[i+1]) is a candidate when the
//     pair differs in at most Smudges positions.
//  2. A candidate is verified by pairing L[i-k] with L[i+1+k] for
//     k = 0..min(i, n-2-i) and summing mismatches over all paired cells.
//  3. The first candidate whose sum equals Smudges is the fold; its
//     Count is i+1.
//
// The filter in step 1 cannot reject a valid fold: the adjacent pair is
// the k = 0 term of the step 2 sum, so a sum of exactly Smudges bounds it.
//
// Performance:
//
//   - Time:   O(n²·w) per axis worst case (n lines of width w)
//   - Memory: O(n·w) for the transposed columns
package fold
