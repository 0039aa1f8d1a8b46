// SPDX-License-Identifier: MIT

// Package cost prices movement for an agent on a maze grid whose cost
// depends on turning as well as distance.
//
// Overview:
//
//   - Every step onto an adjacent tile costs StepCost (1 by default).
//   - Changing heading costs TurnPenalty per quarter-turn (1000 by default):
//     0 when the heading is unchanged, 1×penalty for a 90° turn and
//     2×penalty for a reversal. The quarter-turn count comes from
//     maze.Orientation.Turns, i.e. modular distance on the N,E,S,W cycle.
//   - Heuristic is the Manhattan distance scaled by StepCost. It ignores
//     turning entirely, so it never overestimates (admissible) and drops by
//     at most one step per move (consistent), but it is loose whenever the
//     route must turn. Looseness affects search effort, never correctness.
//
// Errors:
//
//   - ErrBadTurnPenalty: TurnPenalty < 0.
//   - ErrBadStepCost:    StepCost < 1 (a zero step cost breaks consistency).
//   - ErrBrokenRoute:    RouteCost was given non-adjacent consecutive tiles.
package cost
