package document

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mirrorfold/grid"
)

// Split cuts input into blocks separated by empty lines. "\r\n" endings are
// accepted, and runs of empty lines at either end or between blocks produce no
// empty blocks. A line of spaces is grid content, not a separator: any symbol,
// space included, may fill a row.
func Split(input string) []Block {
	var (
		blocks []Block
		cur    []string
		start  int
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		blocks = append(blocks, Block{
			Index: len(blocks),
			Line:  start,
			Text:  strings.Join(cur, "\n"),
		})
		cur = nil
	}

	for n, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			flush()
			continue
		}
		if len(cur) == 0 {
			start = n + 1
		}
		cur = append(cur, line)
	}
	flush()

	return blocks
}

// Parse splits input and parses every block into a grid.
// A ragged block fails with an error wrapping grid.ErrNonRectangular.
func Parse(input string) (*Document, error) {
	blocks := Split(input)
	for i := range blocks {
		g, err := grid.Parse(blocks[i].Text)
		if err != nil {
			return nil, fmt.Errorf("document: block %d (line %d): %w", blocks[i].Index, blocks[i].Line, err)
		}
		blocks[i].Grid = g
	}

	return &Document{Blocks: blocks}, nil
}
