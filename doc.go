// SPDX-License-Identifier: MIT

// Package turnpath finds the cheapest way through a grid maze for an agent
// that pays for every step and, far more, for every quarter-turn.
//
// 🚀 What is turnpath?
//
//	A small, deterministic search engine built from four subpackages:
//		• maze  : grid parsing, cells, positions, orientations, regions, rendering
//		• cost  : step cost + turn penalty pricing and the Manhattan heuristic
//		• search: best-first search over (position, orientation) states
//		• tiles : tiles covered by, or touching, a set of routes
//
// plus config (YAML run settings) and cmd/turnpath (the CLI).
//
// ✨ Guarantees
//
//   - Optimal: the heuristic never overestimates, so the first goal pop is cheapest
//   - Deterministic: equal-priority states leave the frontier in insertion order
//   - Quiet: nothing is logged unless a logrus logger is injected
//
// Quick example:
//
//	#####
//	#S.E#     facing East: cost 2, route (1,1) → (1,2) → (1,3)
//	#####
//
//	eng, err := turnpath.Load(strings.NewReader(text))
//	res, err := eng.FindOptimalPath(maze.East)
//	fmt.Println(res.Cost, res.Route)
package turnpath
