package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mirrorfold/document"
)

var errUnknownFormat = errors.New("unknown output format")

func (a *app) run(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String(formatFlag)
	switch format {
	case formatText, formatJSON, formatYAML:
	case "yml":
		format = formatYAML
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	path := cmd.String(inputFlag)
	input, err := a.readInput(path)
	if err != nil {
		return fmt.Errorf("reading input %s: %w", path, err)
	}
	a.logger().Debug("input read", "path", path, "bytes", len(input))

	opts := document.DefaultOptions()
	opts.Fold.Smudges = int(cmd.Int(smudgesFlag))
	opts.Workers = int(cmd.Int(workersFlag))
	opts.Logger = a.logger()

	report, err := document.Summarize(ctx, input, opts)
	if err != nil {
		return fmt.Errorf("summarizing input: %w", err)
	}

	return a.encode(format, report)
}

func (a *app) readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(a.in)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func (a *app) encode(format string, r *document.Report) error {
	switch format {
	case formatJSON:
		e := json.NewEncoder(a.out)
		e.SetIndent("", "  ")
		return e.Encode(r)
	case formatYAML:
		e := yaml.NewEncoder(a.out)
		e.SetIndent(2)
		if err := e.Encode(r); err != nil {
			return err
		}
		return e.Close()
	default:
		_, err := fmt.Fprintln(a.out, strconv.Itoa(r.Total))
		return err
	}
}
