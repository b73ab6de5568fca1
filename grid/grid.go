package grid

import "strings"

// New constructs a Grid from a non-empty, rectangular 2D slice of runes.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]rune, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]rune, w)
		copy(cells[y], rows[y])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Parse builds a Grid from newline-separated text. A trailing newline is
// ignored and "\r\n" line endings are accepted.
// Returns ErrEmptyGrid for blank text, ErrNonRectangular for ragged lines.
func Parse(text string) (*Grid, error) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
	}

	return New(rows)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the rune at column x, row y. It panics if (x,y) is out of bounds.
func (g *Grid) At(x, y int) rune {
	return g.cells[y][x]
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []rune {
	out := make([]rune, g.width)
	copy(out, g.cells[y])
	return out
}

// Column returns a copy of column x, read top to bottom.
func (g *Grid) Column(x int) []rune {
	out := make([]rune, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = g.cells[y][x]
	}
	return out
}

// Rows returns a copy of all rows, top to bottom.
func (g *Grid) Rows() [][]rune {
	out := make([][]rune, g.height)
	for y := range out {
		out[y] = g.Row(y)
	}
	return out
}

// Columns returns all columns, left to right: the rows of the transposed grid.
// Complexity: O(W×H).
func (g *Grid) Columns() [][]rune {
	out := make([][]rune, g.width)
	for x := range out {
		out[x] = g.Column(x)
	}
	return out
}

// Lines returns Rows() or Columns() depending on axis.
func (g *Grid) Lines(axis Axis) [][]rune {
	if axis == Columns {
		return g.Columns()
	}
	return g.Rows()
}

// Len returns the number of lines along axis: Height for Rows, Width for Columns.
func (g *Grid) Len(axis Axis) int {
	if axis == Columns {
		return g.width
	}
	return g.height
}

// Transpose returns a new Grid whose rows are the columns of g.
func (g *Grid) Transpose() *Grid {
	return &Grid{width: g.height, height: g.width, cells: g.Columns()}
}

// String renders the grid back to newline-separated text without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
