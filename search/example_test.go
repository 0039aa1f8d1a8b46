// SPDX-License-Identifier: MIT

package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/turnpath/maze"
	"github.com/katalvlaran/turnpath/search"
)

// ExampleFindOptimalPath finds the cheapest route through a two-turn maze.
func ExampleFindOptimalPath() {
	g, _ := maze.FromLines([]string{
		"#####",
		"#S..#",
		"##.##",
		"#..E#",
		"#####",
	})
	res, err := search.FindOptimalPath(g, maze.East)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("route:", res.Route)
	fmt.Println("arrival:", res.Arrival)
	// Output:
	// cost: 2004
	// route: [(1,1) (1,2) (2,2) (3,2) (3,3)]
	// arrival: East
}

// ExampleFindAllOptimalPaths collects both sides of a symmetric fork.
func ExampleFindAllOptimalPaths() {
	g, _ := maze.FromLines([]string{
		"#####",
		"#.E.#",
		"#.#.#",
		"#.S.#",
		"#####",
	})
	all, _ := search.FindAllOptimalPaths(g, maze.North)
	fmt.Println("cost:", all.Cost)
	fmt.Println("routes:", len(all.Routes))
	// Output:
	// cost: 3004
	// routes: 2
}

// ExampleSolve lets the agent pick its start heading.
func ExampleSolve() {
	g, _ := maze.FromLines([]string{
		"#####",
		"#.E.#",
		"#.#.#",
		"#.S.#",
		"#####",
	})
	best, _ := search.Solve(context.Background(), g, maze.West)
	fmt.Printf("start %v, total %d\n", best.Start, best.Total)
	// Output:
	// start West, total 2004
}
