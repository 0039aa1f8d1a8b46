// SPDX-License-Identifier: MIT

package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/maze"
)

// Shared fixtures. Each grid is small enough to verify by hand.
var (
	// corridorLines is a straight three-tile corridor.
	corridorLines = []string{
		"#####",
		"#S.E#",
		"#####",
	}

	// elbowLines forces exactly one 90° turn when starting East.
	elbowLines = []string{
		"#####",
		"#S..#",
		"###.#",
		"###E#",
		"#####",
	}

	// zigzagLines forces two 90° turns when starting East.
	zigzagLines = []string{
		"#####",
		"#S..#",
		"##.##",
		"#..E#",
		"#####",
	}

	// sealedLines walls the start in on all four sides.
	sealedLines = []string{
		"#####",
		"#S#E#",
		"#####",
	}

	// forkLines offers two mirror-image routes around a central wall,
	// arriving on the goal facing East and West respectively.
	forkLines = []string{
		"#####",
		"#.E.#",
		"#.#.#",
		"#.S.#",
		"#####",
	}

	// reindeerLines and reindeerWideLines are larger mazes with many
	// competing routes.
	reindeerLines = []string{
		"###############",
		"#.......#....E#",
		"#.#.###.#.###.#",
		"#.....#.#...#.#",
		"#.###.#####.#.#",
		"#.#.#.......#.#",
		"#.#.#####.###.#",
		"#...........#.#",
		"###.#.#####.#.#",
		"#...#.....#.#.#",
		"#.#.#.###.#.#.#",
		"#.....#...#.#.#",
		"#.###.#.#.#.#.#",
		"#S..#.....#...#",
		"###############",
	}
	reindeerWideLines = []string{
		"#################",
		"#...#...#...#..E#",
		"#.#.#.#.#.#.#.#.#",
		"#.#.#.#...#...#.#",
		"#.#.#.#.###.#.#.#",
		"#...#.#.#.....#.#",
		"#.#.#.#.#.#####.#",
		"#.#...#.#.#.....#",
		"#.#.#####.#.###.#",
		"#.#.#.......#...#",
		"#.#.###.#####.###",
		"#.#.#...#.....#.#",
		"#.#.#.#####.###.#",
		"#.#.#.........#.#",
		"#.#.#.#########.#",
		"#S#.............#",
		"#################",
	}
)

// mustGrid builds a grid or fails the test.
func mustGrid(tb testing.TB, lines []string) *maze.Grid {
	tb.Helper()
	g, err := maze.FromLines(lines)
	require.NoError(tb, err)
	return g
}

// pos is shorthand for a maze.Position literal.
func pos(r, c int) maze.Position { return maze.Position{Row: r, Col: c} }
