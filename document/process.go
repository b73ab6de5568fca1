package document

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mirrorfold/fold"
)

// Process returns the summed fold score of input as a decimal string.
// An input without blocks scores "0".
func Process(ctx context.Context, input string, opts Options) (string, error) {
	r, err := Summarize(ctx, input, opts)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(r.Total), nil
}

// Summarize parses input and detects the fold of every block.
// Blocks without a fold are reported with Found=false and add nothing to Total.
func Summarize(ctx context.Context, input string, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := Parse(input)
	if err != nil {
		return nil, err
	}
	results, err := detectAll(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	r := &Report{Smudges: opts.Fold.Smudges, Results: results}
	for _, res := range results {
		r.Total += res.Score
	}
	opts.logger().Debug("document summarized", "blocks", len(results), "total", r.Total)

	return r, nil
}

// detectAll runs fold.Detect over the blocks of doc, at most opts.workers()
// at a time. Each goroutine writes only its own slot of the result slice.
func detectAll(ctx context.Context, doc *Document, opts Options) ([]Result, error) {
	results := make([]Result, len(doc.Blocks))
	log := opts.logger()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, b := range doc.Blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := Result{Block: b.Index, Line: b.Line}
			if f, ok := fold.Detect(b.Grid, opts.Fold); ok {
				res.Found = true
				res.Fold = &f
				res.Score = f.Score()
				log.Debug("fold detected", "block", b.Index, "line", b.Line, "fold", f.String())
			} else {
				log.Debug("no fold", "block", b.Index, "line", b.Line)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
