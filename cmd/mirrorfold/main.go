// Command mirrorfold prints the summed fold score of a puzzle input.
//
//	mirrorfold --input notes.txt            # 400
//	mirrorfold --smudges 0 < notes.txt      # 405
//	mirrorfold --format yaml --input notes.txt
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/mirrorfold/fold"
	"github.com/katalvlaran/mirrorfold/logging"
)

const (
	name = "mirrorfold"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

const (
	inputFlag   = "input"
	smudgesFlag = "smudges"
	workersFlag = "workers"
	formatFlag  = "format"
	debugFlag   = "debug"
)

// flags are built per command: urfave flags keep parsed state between runs.
func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    inputFlag,
			Aliases: []string{"i"},
			Usage:   "Path to the puzzle input, - for stdin",
			Value:   "-",
			Sources: cli.EnvVars("MIRRORFOLD_INPUT"),
		},
		&cli.IntFlag{
			Name:    smudgesFlag,
			Usage:   "Exact number of mismatched cells a fold must have",
			Value:   fold.DefaultSmudges,
			Sources: cli.EnvVars("MIRRORFOLD_SMUDGES"),
		},
		&cli.IntFlag{
			Name:    workersFlag,
			Usage:   "Grids processed concurrently (0 = GOMAXPROCS)",
			Sources: cli.EnvVars("MIRRORFOLD_WORKERS"),
		},
		&cli.StringFlag{
			Name:    formatFlag,
			Usage:   "Output format [text, json, yaml]",
			Value:   formatText,
			Sources: cli.EnvVars("MIRRORFOLD_FORMAT"),
		},
		&cli.BoolFlag{
			Name:    debugFlag,
			Usage:   "Prints verbose logs (optional, default: false)",
			Sources: cli.EnvVars("MIRRORFOLD_DEBUG"),
		},
	}
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		a.logger().Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// app carries the streams and logger shared by the command's hooks.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      name,
		Version:   fmt.Sprintf("%s (commit: %s)", version, commit),
		Usage:     "Find the smudged mirror line of every grid and sum the fold scores",
		Flags:     flags(),
		Writer:    a.out,
		ErrWriter: a.errOut,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := "info"
			if cmd.Bool(debugFlag) {
				level = "debug"
			}
			a.log = logging.NewCLILogger(a.errOut, level, a.errOut == os.Stderr)
			return ctx, nil
		},
		Action: a.run,
	}
}

func (a *app) logger() *slog.Logger {
	if a.log == nil {
		a.log = logging.NewCLILogger(a.errOut, "info", a.errOut == os.Stderr)
	}
	return a.log
}
