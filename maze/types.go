// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"strings"
)

// Cell classifies a single maze tile. Cells never change once a Grid is built.
type Cell uint8

const (
	// Wall is impassable.
	Wall Cell = iota
	// Floor is an ordinary traversable tile.
	Floor
	// Start is the traversable tile the agent begins on.
	Start
	// End is the traversable goal tile.
	End
)

// Symbol returns the character used for c in the textual maze format.
func (c Cell) Symbol() rune {
	switch c {
	case Floor:
		return '.'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '#'
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// ParseCell maps a maze character to its Cell. ok is false for any
// character outside "#.SE".
func ParseCell(r rune) (c Cell, ok bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Floor, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	default:
		return Wall, false
	}
}

// Position is a (row, column) coordinate. Row 0 is the top line.
type Position struct {
	Row, Col int
}

// Step returns the position one tile away in direction o.
func (p Position) Step(o Orientation) Position {
	dr, dc := o.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String implements fmt.Stringer as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Orientation is a cardinal heading, cyclically ordered North → East →
// South → West → North.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West

	numOrientations = 4
)

// Orientations returns the four headings in cyclic order.
func Orientations() [numOrientations]Orientation {
	return [numOrientations]Orientation{North, East, South, West}
}

// Valid reports whether o is one of the four cardinal headings.
func (o Orientation) Valid() bool { return o < numOrientations }

// Delta returns the (row, col) offset of a single step facing o.
func (o Orientation) Delta() (dRow, dCol int) {
	switch o {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Turns returns the minimal number of quarter-turns between o and to:
// 0 for the same heading, 1 for a 90° turn, 2 for a reversal.
func (o Orientation) Turns(to Orientation) int {
	diff := (int(to) - int(o) + numOrientations) % numOrientations
	if diff > numOrientations-diff {
		return numOrientations - diff
	}
	return diff
}

// Right returns the heading after a clockwise quarter-turn.
func (o Orientation) Right() Orientation { return (o + 1) % numOrientations }

// Left returns the heading after a counter-clockwise quarter-turn.
func (o Orientation) Left() Orientation { return (o + numOrientations - 1) % numOrientations }

// Opposite returns the reversed heading.
func (o Orientation) Opposite() Orientation { return (o + 2) % numOrientations }

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// ParseOrientation accepts a heading name or its initial, case-insensitively
// ("east", "E", "North"...).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	default:
		return North, fmt.Errorf("maze: unknown orientation %q", s)
	}
}
