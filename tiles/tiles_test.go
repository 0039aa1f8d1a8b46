// SPDX-License-Identifier: MIT

package tiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/maze"
	"github.com/katalvlaran/turnpath/search"
	"github.com/katalvlaran/turnpath/tiles"
)

func mustGrid(t *testing.T, lines ...string) *maze.Grid {
	t.Helper()
	g, err := maze.FromLines(lines)
	require.NoError(t, err)
	return g
}

func pos(r, c int) maze.Position { return maze.Position{Row: r, Col: c} }

func TestAdjacent_Room(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#S..#",
		"#...#",
		"#..E#",
		"#####",
	)
	route := []maze.Position{pos(1, 1), pos(1, 2), pos(1, 3), pos(2, 3), pos(3, 3)}

	adj := tiles.Adjacent(g, route)
	assert.Equal(t, []maze.Position{pos(2, 1), pos(2, 2), pos(3, 2)}, tiles.Sorted(adj))
	assert.Equal(t, 3, tiles.CountAdjacent(g, route))
	assert.Equal(t, 5, tiles.CountOnRoutes(route))
	assert.False(t, adj.Has(pos(3, 1)), "diagonal only")
}

func TestAdjacent_Fork(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#.E.#",
		"#.#.#",
		"#.S.#",
		"#####",
	)
	all, err := search.FindAllOptimalPaths(g, maze.North)
	require.NoError(t, err)
	require.Len(t, all.Routes, 2)

	// both sides together cover every floor tile
	assert.Equal(t, g.FloorCount(), tiles.CountOnRoutes(all.Routes...))
	assert.Zero(t, tiles.CountAdjacent(g, all.Routes...))

	left := search.Route{pos(3, 2), pos(3, 1), pos(2, 1), pos(1, 1), pos(1, 2)}
	assert.Equal(t, []maze.Position{pos(1, 3), pos(3, 3)}, tiles.Sorted(tiles.Adjacent(g, left)))
}

func TestAdjacent_Empty(t *testing.T) {
	g := mustGrid(t, "#####", "#S.E#", "#####")
	assert.Zero(t, tiles.CountAdjacent[[]maze.Position](g))
	assert.Zero(t, tiles.CountAdjacent(nil, []maze.Position{pos(1, 1)}))
	assert.Zero(t, tiles.CountOnRoutes[[]maze.Position]())
}

func TestUnique(t *testing.T) {
	a := search.Route{pos(1, 1), pos(1, 2)}
	b := search.Route{pos(1, 1), pos(2, 1)}
	got := tiles.Unique([]search.Route{a, b, {pos(1, 1), pos(1, 2)}, a})
	assert.Equal(t, []search.Route{a, b}, got)
	assert.Empty(t, tiles.Unique[search.Route](nil))
}
