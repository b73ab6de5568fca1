// Package mirrorfold finds lines of reflection in ASCII grids, tolerating a
// fixed number of smudged cells, and scores whole documents of such grids.
//
// 🚀 What is mirrorfold?
//
//	A small, pure-Go toolkit for the "point of incidence" mirror puzzle:
//		• grid:     immutable rectangular rune grids, rows & columns views
//		• fold:     horizontal/vertical fold detection with a smudge budget
//		• document: blank-line splitting, concurrent detection, scoring
//		• logging:  slog handler for the CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/          — parsing, validation (ErrEmptyGrid, ErrNonRectangular), transpose
//	fold/          — Detect, DetectHorizontal, DetectVertical, Candidates, Verify
//	document/      — Split, Parse, Summarize, Process
//	logging/       — CLIHandler, ParseLogLevel
//	cmd/mirrorfold — command-line entry point (text, json or yaml output)
//
// Quick ASCII example:
//
//	#...##..#   1
//	#....#..#   2   <- differs from row 1 in one cell
//	--------- fold after row 1: Horizontal(1), score 100
//
//	go install github.com/katalvlaran/mirrorfold/cmd/mirrorfold@latest
package mirrorfold
