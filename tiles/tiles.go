// SPDX-License-Identifier: MIT

package tiles

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/turnpath/maze"
)

// OnRoutes returns the distinct tiles covered by any of routes.
func OnRoutes[R ~[]maze.Position](routes ...R) mapset.Set[maze.Position] {
	on := mapset.New[maze.Position]()
	for _, r := range routes {
		for _, p := range r {
			on.Put(p)
		}
	}
	return on
}

// CountOnRoutes returns OnRoutes(routes...).Size().
func CountOnRoutes[R ~[]maze.Position](routes ...R) int {
	return OnRoutes(routes...).Size()
}

// Adjacent returns the traversable tiles of g that share an edge with a
// route tile but lie on none of routes.
// Complexity: O(total route length).
func Adjacent[R ~[]maze.Position](g *maze.Grid, routes ...R) mapset.Set[maze.Position] {
	adj := mapset.New[maze.Position]()
	if g == nil {
		return adj
	}
	on := OnRoutes(routes...)
	on.Each(func(p maze.Position) {
		for _, n := range g.Neighbors(p) {
			if !on.Has(n) {
				adj.Put(n)
			}
		}
	})
	return adj
}

// CountAdjacent returns Adjacent(g, routes...).Size().
func CountAdjacent[R ~[]maze.Position](g *maze.Grid, routes ...R) int {
	return Adjacent(g, routes...).Size()
}

// Unique drops routes that repeat an earlier route tile for tile,
// keeping first occurrences in order.
func Unique[R ~[]maze.Position](routes []R) []R {
	out := make([]R, 0, len(routes))
	for _, r := range routes {
		if !slices.ContainsFunc(out, func(seen R) bool { return slices.Equal(seen, r) }) {
			out = append(out, r)
		}
	}
	return out
}

// Sorted returns the members of s in row-major order.
func Sorted(s mapset.Set[maze.Position]) []maze.Position {
	out := make([]maze.Position, 0, s.Size())
	s.Each(func(p maze.Position) { out = append(out, p) })
	slices.SortFunc(out, func(a, b maze.Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}
