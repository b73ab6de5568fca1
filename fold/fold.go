package fold

import "github.com/katalvlaran/mirrorfold/grid"

// Detect returns the fold of g: the horizontal fold if there is one,
// otherwise the vertical fold. ok is false when neither axis has a fold
// with exactly opts.Smudges mismatches.
//
// Detect is pure; repeated calls on the same grid return the same result.
func Detect(g *grid.Grid, opts Options) (f Fold, ok bool) {
	if f, ok = DetectHorizontal(g, opts); ok {
		return f, true
	}
	return DetectVertical(g, opts)
}

// DetectHorizontal looks for a fold between two rows.
func DetectHorizontal(g *grid.Grid, opts Options) (Fold, bool) {
	return detectAxis(g, Horizontal, opts)
}

// DetectVertical looks for a fold between two columns.
func DetectVertical(g *grid.Grid, opts Options) (Fold, bool) {
	return detectAxis(g, Vertical, opts)
}

func detectAxis(g *grid.Grid, axis Axis, opts Options) (Fold, bool) {
	// A single line along the axis has no boundary to fold on.
	if g == nil || g.Len(axis.lines()) < 2 {
		return Fold{}, false
	}
	n, ok := Find(g.Lines(axis.lines()), opts.Smudges)
	if !ok {
		return Fold{}, false
	}
	return Fold{Axis: axis, Count: n}, true
}

// Find returns the 1-based count of lines before the first boundary that
// passes Verify, trying only boundaries returned by Candidates.
// Fewer than two lines never yield a fold.
func Find(lines [][]rune, smudges int) (int, bool) {
	for _, i := range Candidates(lines, smudges) {
		if Verify(lines, i, smudges) {
			return i + 1, true
		}
	}
	return 0, false
}

// Candidates returns, in increasing order, every index i such that lines[i]
// and lines[i+1] differ in at most smudges positions.
func Candidates(lines [][]rune, smudges int) []int {
	var out []int
	for i := 0; i+1 < len(lines); i++ {
		if mismatches(lines[i], lines[i+1], smudges) <= smudges {
			out = append(out, i)
		}
	}
	return out
}

// Verify reports whether folding between lines[i] and lines[i+1] leaves
// exactly smudges mismatched cells. The near side lines[i], lines[i-1], …
// is paired with the far side lines[i+1], lines[i+2], … until either side
// runs out.
func Verify(lines [][]rune, i, smudges int) bool {
	if i < 0 || i+1 >= len(lines) || smudges < 0 {
		return false
	}
	total := 0
	for near, far := i, i+1; near >= 0 && far < len(lines); near, far = near-1, far+1 {
		total += mismatches(lines[near], lines[far], smudges-total)
		if total > smudges {
			return false
		}
	}
	return total == smudges
}

// mismatches counts positions where a and b differ, compared up to the
// shorter length. Counting stops once the count exceeds limit.
func mismatches(a, b []rune, limit int) int {
	n := min(len(a), len(b))
	count := 0
	for k := 0; k < n; k++ {
		if a[k] != b[k] {
			count++
			if count > limit {
				return count
			}
		}
	}
	return count
}
