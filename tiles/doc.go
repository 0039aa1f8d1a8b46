// SPDX-License-Identifier: MIT

// Package tiles answers set questions about routes on a maze.Grid: which
// tiles the routes cover and which floor tiles touch them from outside.
//
// Every function accepts any slice type over maze.Position, so search.Route
// values pass straight through. Sets are github.com/zyedidia/generic/mapset
// values and carry no order; Sorted returns their members row-major.
//
//	all, _ := search.FindAllOptimalPaths(g, maze.East)
//	seats := tiles.CountOnRoutes(all.Routes...)
//	around := tiles.CountAdjacent(g, all.Routes...)
package tiles
