package fold_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mirrorfold/fold"
	"github.com/katalvlaran/mirrorfold/grid"
)

const (
	// mirrorA has a smudged horizontal fold after row 3
	// and a clean vertical fold after column 5.
	mirrorA = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.`

	// mirrorB has a smudged horizontal fold after row 1
	// and a clean horizontal fold after row 4.
	mirrorB = `#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#`
)

// DetectSuite exercises Detect, DetectHorizontal and DetectVertical.
type DetectSuite struct {
	suite.Suite
	opts fold.Options
}

func (s *DetectSuite) SetupTest() {
	s.opts = fold.DefaultOptions()
}

// TestSmudgedMirrors checks both sample grids with the default budget of one.
func (s *DetectSuite) TestSmudgedMirrors() {
	cases := []struct {
		name string
		text string
		want fold.Fold
	}{
		{"mirrorA", mirrorA, fold.Fold{Axis: fold.Horizontal, Count: 3}},
		{"mirrorB", mirrorB, fold.Fold{Axis: fold.Horizontal, Count: 1}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, ok := fold.Detect(grid.MustParse(tc.text), s.opts)
			require.True(s.T(), ok)
			require.Equal(s.T(), tc.want, got)
		})
	}
}

// TestCleanMirrors checks the same grids with a zero budget.
func (s *DetectSuite) TestCleanMirrors() {
	s.opts.Smudges = 0

	got, ok := fold.Detect(grid.MustParse(mirrorA), s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Fold{Axis: fold.Vertical, Count: 5}, got)

	got, ok = fold.Detect(grid.MustParse(mirrorB), s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Fold{Axis: fold.Horizontal, Count: 4}, got)
}

// TestTwoRows verifies that a 2-row grid with one differing cell folds after row 1.
func (s *DetectSuite) TestTwoRows() {
	got, ok := fold.Detect(grid.MustParse("#.#.\n#..."), s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Fold{Axis: fold.Horizontal, Count: 1}, got)
}

// TestNoFold verifies that a grid with no single-smudge boundary yields nothing.
func (s *DetectSuite) TestNoFold() {
	g := grid.MustParse("#.\n.#")
	_, ok := fold.Detect(g, s.opts)
	require.False(s.T(), ok)

	// Identical adjacent rows but a perfect mirror: zero mismatches is not one.
	g = grid.MustParse("#..\n#..")
	_, ok = fold.DetectHorizontal(g, s.opts)
	require.False(s.T(), ok)
}

// TestSingleLine verifies that one row has no horizontal candidates.
func (s *DetectSuite) TestSingleLine() {
	g := grid.MustParse("#.##")
	_, ok := fold.DetectHorizontal(g, s.opts)
	require.False(s.T(), ok)

	got, ok := fold.DetectVertical(g, s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Fold{Axis: fold.Vertical, Count: 1}, got)
}

// TestSingleColumn verifies that one column has no vertical candidates
// while its rows can still fold.
func (s *DetectSuite) TestSingleColumn() {
	g := grid.MustParse("#\n.\n.\n.")
	_, ok := fold.DetectVertical(g, s.opts)
	require.False(s.T(), ok)

	got, ok := fold.Detect(g, s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Fold{Axis: fold.Horizontal, Count: 1}, got)
}

// TestPrefersHorizontal checks the short-circuit order when both axes fold.
func (s *DetectSuite) TestPrefersHorizontal() {
	g := grid.MustParse("#.\n..")

	v, ok := fold.DetectVertical(g, s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Fold{Axis: fold.Vertical, Count: 1}, v)

	got, ok := fold.Detect(g, s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Horizontal, got.Axis)
}

// TestVerticalOnly checks a grid whose only fold is between columns.
//
// Grid:
//
//	# . . #
//	. # # .
//	. . . #
func (s *DetectSuite) TestVerticalOnly() {
	g := grid.MustParse("#..#\n.##.\n...#")
	_, ok := fold.DetectHorizontal(g, s.opts)
	require.False(s.T(), ok)

	got, ok := fold.Detect(g, s.opts)
	require.True(s.T(), ok)
	require.Equal(s.T(), fold.Fold{Axis: fold.Vertical, Count: 2}, got)
}

// TestIdempotent checks repeated calls return the same fold.
func (s *DetectSuite) TestIdempotent() {
	g := grid.MustParse(mirrorA)
	first, ok1 := fold.Detect(g, s.opts)
	second, ok2 := fold.Detect(g, s.opts)
	require.Equal(s.T(), ok1, ok2)
	require.Equal(s.T(), first, second)
}

// TestNilGrid ensures a nil grid is treated as having no fold.
func (s *DetectSuite) TestNilGrid() {
	_, ok := fold.Detect(nil, s.opts)
	require.False(s.T(), ok)
}

// TestNegativeBudget ensures a negative budget never matches.
func (s *DetectSuite) TestNegativeBudget() {
	s.opts.Smudges = -1
	require.ErrorIs(s.T(), s.opts.Validate(), fold.ErrNegativeSmudges)
	_, ok := fold.Detect(grid.MustParse(mirrorA), s.opts)
	require.False(s.T(), ok)
}

func TestDetectSuite(t *testing.T) {
	suite.Run(t, new(DetectSuite))
}

//----------------------------------------------------------------------------//
// Candidates / Verify / Find
//----------------------------------------------------------------------------//

func lines(rows ...string) [][]rune {
	out := make([][]rune, len(rows))
	for i, r := range rows {
		out[i] = []rune(r)
	}
	return out
}

func TestCandidates(t *testing.T) {
	ls := grid.MustParse(mirrorA).Rows()
	require.Equal(t, []int{2}, fold.Candidates(ls, 1))
	require.Equal(t, []int{2}, fold.Candidates(ls, 0))
	require.Empty(t, fold.Candidates(ls[:1], 1))
	require.Empty(t, fold.Candidates(nil, 1))
}

func TestVerify(t *testing.T) {
	ls := grid.MustParse(mirrorB).Rows()

	require.True(t, fold.Verify(ls, 0, 1))
	require.False(t, fold.Verify(ls, 0, 0))
	require.True(t, fold.Verify(ls, 3, 0))
	require.False(t, fold.Verify(ls, 3, 1))

	t.Run("out of range", func(t *testing.T) {
		require.False(t, fold.Verify(ls, -1, 1))
		require.False(t, fold.Verify(ls, len(ls)-1, 1))
	})
}

// TestVerify_SmudgeAwayFromBoundary checks that the smudge may sit on any
// mirrored pair, not only the pair adjacent to the fold.
func TestVerify_SmudgeAwayFromBoundary(t *testing.T) {
	ls := lines(
		"#..#",
		".##.",
		"#..#",
		"#..#",
		".##.",
		"##.#",
	)
	require.True(t, fold.Verify(ls, 2, 1))
	n, ok := fold.Find(ls, 1)
	require.True(t, ok)
	require.Equal(t, 3, n)
}

// TestVerify_TwoSmudges checks that two mismatches exceed a budget of one
// even when each mirrored pair differs only once.
func TestVerify_TwoSmudges(t *testing.T) {
	ls := lines(
		"#..#",
		".#..",
		".##.",
		"#.##",
	)
	require.False(t, fold.Verify(ls, 1, 1))
	require.True(t, fold.Verify(ls, 1, 2))
}

//----------------------------------------------------------------------------//
// Fold value Tests
//----------------------------------------------------------------------------//

func TestFold_StringAndScore(t *testing.T) {
	h := fold.Fold{Axis: fold.Horizontal, Count: 3}
	v := fold.Fold{Axis: fold.Vertical, Count: 5}

	require.Equal(t, "Horizontal(3)", h.String())
	require.Equal(t, "Vertical(5)", v.String())
	require.Equal(t, 300, h.Score())
	require.Equal(t, 5, v.Score())
	require.Equal(t, "Axis(7)", fold.Axis(7).String())
}

func TestAxis_Text(t *testing.T) {
	b, err := fold.Vertical.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "vertical", string(b))

	var a fold.Axis
	require.NoError(t, a.UnmarshalText([]byte("horizontal")))
	require.Equal(t, fold.Horizontal, a)
	require.Error(t, a.UnmarshalText([]byte("diagonal")))

	_, err = fold.Axis(9).MarshalText()
	require.Error(t, err)
}
