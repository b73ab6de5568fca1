package document

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/mirrorfold/fold"
	"github.com/katalvlaran/mirrorfold/grid"
)

// ErrInvalidWorkers indicates Options.Workers < 0.
var ErrInvalidWorkers = errors.New("document: workers must not be negative")

// Block is one blank-line-delimited chunk of the input.
// Index is 0-based; Line is the 1-based input line the block starts on.
// Grid is nil until the block is parsed.
type Block struct {
	Index int
	Line  int
	Text  string
	Grid  *grid.Grid
}

// Document is the ordered list of parsed blocks of one input.
type Document struct {
	Blocks []Block
}

// Result is the outcome of fold detection on one block.
type Result struct {
	Block int        `json:"block" yaml:"block"`
	Line  int        `json:"line" yaml:"line"`
	Found bool       `json:"found" yaml:"found"`
	Fold  *fold.Fold `json:"fold,omitempty" yaml:"fold,omitempty"`
	Score int        `json:"score" yaml:"score"`
}

// Report collects per-block results and their summed score.
type Report struct {
	Smudges int      `json:"smudges" yaml:"smudges"`
	Results []Result `json:"results" yaml:"results"`
	Total   int      `json:"total" yaml:"total"`
}

// Options configures Summarize and Process.
//
// Fields:
//   - Fold    — detector options (smudge budget).
//   - Workers — maximum blocks detected concurrently; 0 means
//     runtime.GOMAXPROCS(0), 1 means sequential.
//   - Logger  — debug sink for per-block results; nil means slog.Default().
type Options struct {
	Fold    fold.Options
	Workers int
	Logger  *slog.Logger
}

// DefaultOptions returns Options with the default smudge budget and
// GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Fold:    fold.DefaultOptions(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

func (o Options) validate() error {
	if err := o.Fold.Validate(); err != nil {
		return err
	}
	if o.Workers < 0 {
		return ErrInvalidWorkers
	}
	return nil
}

func (o Options) workers() int {
	if o.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
