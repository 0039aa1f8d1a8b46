// SPDX-License-Identifier: MIT

package search

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/turnpath/maze"
)

// Candidate is the outcome of searching from one start heading.
type Candidate struct {
	Start       maze.Orientation // heading the search began with
	InitialTurn int64            // cost of turning in place from the agent's facing to Start
	Result      Result           // FindOptimalPath(Start)
	Total       int64            // InitialTurn + Result.Cost; meaningful only if Result.Found
}

// Best is the outcome of Solve.
type Best struct {
	// Candidate is the cheapest found candidate (zero if none).
	Candidate
	// Found reports whether at least one candidate reached the goal.
	Found bool
	// Candidates holds one entry per heading, in N, E, S, W order.
	Candidates [4]Candidate
}

// Solve searches from all four start headings concurrently, each in its own
// goroutine with its own ledger and frontier. The agent initially faces
// `facing`; turning in place to a candidate start heading is priced with the
// configured cost model and added to that candidate's route cost. The
// cheapest total wins, ties going to the earlier heading in N, E, S, W order.
//
// ctx is only consulted before each search begins; a running search is not
// interrupted. Any OnPop hook must be safe for concurrent use.
func Solve(ctx context.Context, g *maze.Grid, facing maze.Orientation, opts ...Option) (Best, error) {
	if g == nil {
		return Best{}, ErrNilGrid
	}
	if !facing.Valid() {
		return Best{}, ErrBadOrientation
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Best{}, err
	}

	var best Best
	eg, ctx := errgroup.WithContext(ctx)
	for i, start := range maze.Orientations() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := FindOptimalPath(g, start, opts...)
			if err != nil {
				return err
			}
			c := Candidate{Start: start, InitialTurn: o.Cost.TurnCost(facing, start), Result: res}
			c.Total = c.InitialTurn + res.Cost
			best.Candidates[i] = c // each goroutine owns one slot
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Best{}, err
	}

	for _, c := range best.Candidates {
		if !c.Result.Found {
			continue
		}
		if !best.Found || c.Total < best.Total {
			best.Candidate, best.Found = c, true
		}
	}

	o.Logger.WithFields(logrus.Fields{"facing": facing, "found": best.Found, "start": best.Start, "total": best.Total}).
		Debug("search: solve finished")
	return best, nil
}
