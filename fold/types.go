package fold

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mirrorfold/grid"
)

// DefaultSmudges is the mismatch budget of the smudged-mirror puzzle.
const DefaultSmudges = 1

// Weights applied by Fold.Score.
const (
	HorizontalWeight = 100
	VerticalWeight   = 1
)

// ErrNegativeSmudges indicates Options.Smudges < 0.
var ErrNegativeSmudges = errors.New("fold: smudge budget must not be negative")

// Axis is the orientation of a fold line.
//
//   - Horizontal — the line lies between two rows; Count rows are above it.
//   - Vertical   — the line lies between two columns; Count columns are left of it.
type Axis int

const (
	// Horizontal folds mirror rows onto rows.
	Horizontal Axis = iota
	// Vertical folds mirror columns onto columns.
	Vertical
)

// String returns "Horizontal" or "Vertical".
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// MarshalText encodes the axis as "horizontal" or "vertical".
func (a Axis) MarshalText() ([]byte, error) {
	switch a {
	case Horizontal:
		return []byte("horizontal"), nil
	case Vertical:
		return []byte("vertical"), nil
	}
	return nil, fmt.Errorf("fold: unknown axis %d", int(a))
}

// UnmarshalText decodes "horizontal" or "vertical".
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal":
		*a = Horizontal
	case "vertical":
		*a = Vertical
	default:
		return fmt.Errorf("fold: unknown axis %q", text)
	}
	return nil
}

// lines maps the fold axis to the grid lines it folds.
func (a Axis) lines() grid.Axis {
	if a == Vertical {
		return grid.Columns
	}
	return grid.Rows
}

// Fold is a detected reflection line.
// Count is the 1-based number of lines preceding the fold.
type Fold struct {
	Axis  Axis `json:"axis" yaml:"axis"`
	Count int  `json:"count" yaml:"count"`
}

// String renders the fold as "Horizontal(n)" or "Vertical(n)".
func (f Fold) String() string {
	return fmt.Sprintf("%s(%d)", f.Axis, f.Count)
}

// Score weighs the fold: HorizontalWeight×Count or VerticalWeight×Count.
func (f Fold) Score() int {
	if f.Axis == Horizontal {
		return HorizontalWeight * f.Count
	}
	return VerticalWeight * f.Count
}

// Options configures fold detection.
//
// Fields:
//   - Smudges — exact number of mismatched cell pairs a valid fold must have.
//     1 for the smudged-mirror puzzle, 0 for a perfect mirror.
type Options struct {
	Smudges int
}

// DefaultOptions returns Options with Smudges = DefaultSmudges.
func DefaultOptions() Options {
	return Options{Smudges: DefaultSmudges}
}

// Validate reports ErrNegativeSmudges for a negative budget.
func (o Options) Validate() error {
	if o.Smudges < 0 {
		return ErrNegativeSmudges
	}
	return nil
}
