package grid

// Axis selects which lines of a Grid are compared: rows or columns.
type Axis int

const (
	// Rows treats every text line as a unit.
	Rows Axis = iota
	// Columns treats every character column as a unit.
	Columns
)

// String returns "rows" or "columns".
func (a Axis) String() string {
	if a == Columns {
		return "columns"
	}
	return "rows"
}

// Grid is a rectangular block of runes. It is immutable once built.
// cells[y][x] holds the rune at (x, y).
type Grid struct {
	width, height int
	cells         [][]rune
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }
