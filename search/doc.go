// SPDX-License-Identifier: MIT

// Package search finds minimum-cost routes through a maze.Grid for an agent
// whose cost depends on turning as well as distance.
//
// Overview:
//
//   - The search space is position × heading: a State pairs a maze.Position
//     with a maze.Orientation, so arriving at the same tile facing a
//     different way is a different state. States are discovered lazily; at
//     most 4×(floor tiles) ever exist.
//   - Moving one tile in heading h from a state facing f costs
//     cost.Model.Edge(f, h): the turn penalty per quarter-turn plus the step
//     cost. The frontier is ordered by f = g + Manhattan(pos, goal), which is
//     admissible and consistent under this model.
//   - FindOptimalPath stops at the first goal pop: its g is the global
//     minimum over every route and every arrival heading.
//   - FindAllOptimalPaths keeps popping after the first goal pop and collects
//     every goal arrival (one per heading) whose cost equals that minimum,
//     stopping as soon as a popped f exceeds it. Routes are NOT deduplicated:
//     two arrival headings may reconstruct to the same tiles (see
//     tiles.Unique).
//   - Solve runs FindOptimalPath for all four start headings concurrently and
//     picks the cheapest once the initial in-place turn is priced in.
//
// Determinism:
//
//   - Equal-f frontier entries pop in insertion order (FIFO), and neighbours
//     are expanded in N, E, S, W order, so results are reproducible.
//
// Complexity:
//
//   - Time:  O(S log S) where S ≤ 4·W·H is the number of states touched.
//   - Space: O(S) for the ledger, predecessor map and frontier
//     (lazy decrease-key: stale entries are skipped on pop).
//
// Concurrency:
//
//   - Each invocation owns its Ledger and Frontier; nothing is shared except
//     the read-only Grid. Independent invocations may run in parallel.
//   - There is no cancellation inside a single search; it ends when the goal
//     pops or the frontier empties.
//
// Errors:
//
//   - ErrNilGrid:         grid pointer is nil.
//   - ErrBadOrientation:  start heading is not one of the four cardinals.
//   - ErrOptionViolation: an Option carried an invalid value.
//
// Absence of a route is not an error: Result.Found is false and
// AllResult.Routes is empty.
package search
