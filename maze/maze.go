// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"sync"
)

// Grid is an immutable maze: a rectangular matrix of cells with exactly one
// Start and one End. All methods are safe for concurrent use.
type Grid struct {
	height, width int
	cells         [][]Cell
	start, end    Position

	regionsOnce sync.Once
	regions     []int // region label per row-major index, -1 for walls
}

// New constructs a Grid from a non-empty rectangular matrix of cells.
// It deep-copies the input so later mutation by the caller has no effect.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrMissingStart, ErrMissingEnd,
// ErrMultipleStart or ErrMultipleEnd (all wrapping ErrParse).
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	g := &Grid{height: h, width: w, cells: make([][]Cell, h)}

	var haveStart, haveEnd bool
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		g.cells[r] = make([]Cell, w)
		copy(g.cells[r], row)
		for c, cell := range row {
			switch cell {
			case Start:
				if haveStart {
					return nil, fmt.Errorf("%w: %v and %v", ErrMultipleStart, g.start, Position{r, c})
				}
				haveStart, g.start = true, Position{r, c}
			case End:
				if haveEnd {
					return nil, fmt.Errorf("%w: %v and %v", ErrMultipleEnd, g.end, Position{r, c})
				}
				haveEnd, g.end = true, Position{r, c}
			case Wall, Floor:
			default:
				return nil, fmt.Errorf("%w: cell value %d at %v", ErrUnknownSymbol, uint8(cell), Position{r, c})
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return g, nil
}

// Dimensions returns (height, width).
func (g *Grid) Dimensions() (height, width int) { return g.height, g.width }

// Start returns the position of the Start cell.
func (g *Grid) Start() Position { return g.start }

// End returns the position of the End cell.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies inside [0,height)×[0,width).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at p; ok is false when p is out of bounds.
func (g *Grid) At(p Position) (c Cell, ok bool) {
	if !g.InBounds(p) {
		return Wall, false
	}
	return g.cells[p.Row][p.Col], true
}

// Traversable reports whether p is in bounds and not a Wall.
// Complexity: O(1).
func (g *Grid) Traversable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] != Wall
}

// Neighbors returns the traversable orthogonal neighbours of p,
// in North, East, South, West order.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, numOrientations)
	for _, o := range Orientations() {
		if q := p.Step(o); g.Traversable(q) {
			out = append(out, q)
		}
	}
	return out
}

// FloorCount returns the number of traversable cells (Floor, Start, End).
func (g *Grid) FloorCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != Wall {
				n++
			}
		}
	}
	return n
}

// index maps p to its row-major index. p must be in bounds.
func (g *Grid) index(p Position) int { return p.Row*g.width + p.Col }

// position is the inverse of index.
func (g *Grid) position(i int) Position { return Position{Row: i / g.width, Col: i % g.width} }
