// SPDX-License-Identifier: MIT

package maze

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strings"
)

// Read builds a Grid from a line source: one maze row per line, using
// '#' for walls, '.' for floor, 'S' for the start and 'E' for the end.
// Trailing carriage returns and trailing blank lines are ignored.
//
// I/O failures are returned as-is; malformed content wraps ErrParse.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	sc.Split(bufio.ScanLines)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading input: %w", err)
	}
	return FromLines(lines)
}

// FromLines builds a Grid from in-memory rows.
func FromLines(lines []string) (*Grid, error) {
	return FromSeq(slices.Values(lines))
}

// FromSeq builds a Grid from any sequence of rows.
func FromSeq(lines iter.Seq[string]) (*Grid, error) {
	var (
		cells [][]Cell
		blank int // trailing blank lines seen since the last row
	)
	for line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			blank++
			continue
		}
		if blank > 0 && len(cells) > 0 {
			return nil, fmt.Errorf("%w: blank line before row %d", ErrNonRectangular, len(cells))
		}
		blank = 0
		row := make([]Cell, 0, len(line))
		col := 0
		for _, ch := range line {
			c, ok := ParseCell(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownSymbol, ch, len(cells), col)
			}
			row = append(row, c)
			col++
		}
		cells = append(cells, row)
	}
	return New(cells)
}
