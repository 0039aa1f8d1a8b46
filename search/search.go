// SPDX-License-Identifier: MIT

package search

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/turnpath/maze"
)

// FindOptimalPath computes one minimum-cost route from the grid's start,
// initially facing `facing`, to the grid's end.
//
// Behavior:
//  1. Seed the ledger with (start, facing) at cost 0 and push it with
//     f = heuristic(start, end).
//  2. Pop the minimum-f state, skipping stale entries.
//  3. If its tile is the goal, stop: its g is the global minimum and
//     the predecessor chain yields the route.
//  4. Otherwise relax the four moves N, E, S, W onto traversable tiles
//     with cost g + turn(facing, move) + step, pushing strict improvements.
//  5. An empty frontier means no route; Result.Found is false.
//
// Returns ErrNilGrid, ErrBadOrientation or ErrOptionViolation for invalid
// input; an unreachable goal is not an error.
func FindOptimalPath(g *maze.Grid, facing maze.Orientation, opts ...Option) (Result, error) {
	r, err := newRunner(g, facing, opts)
	if err != nil {
		return Result{}, err
	}
	if !r.reachable() {
		return Result{}, nil
	}

	for {
		e, ok := r.pop()
		if !ok {
			break
		}
		if e.State.Pos == r.goal {
			res := Result{
				Found:    true,
				Route:    Reconstruct(r.ledger, e.State),
				Cost:     e.G,
				Arrival:  e.State.Facing,
				Expanded: r.expanded,
			}
			r.log.WithFields(logrus.Fields{"cost": res.Cost, "arrival": res.Arrival, "expanded": res.Expanded}).
				Debug("search: goal reached")
			return res, nil
		}
		r.expand(e)
	}

	r.log.WithField("expanded", r.expanded).Debug("search: frontier exhausted")
	return Result{Expanded: r.expanded}, nil
}

// FindAllOptimalPaths computes every minimum-cost route from the grid's
// start, initially facing `facing`, one per goal arrival heading.
//
// It shares FindOptimalPath's loop but does not stop at the first goal pop:
// that pop fixes min_cost, every later goal pop with g == min_cost is
// reconstructed independently, goal states are never expanded, and the loop
// ends once a popped f exceeds min_cost (pops are non-decreasing in f, so no
// cheaper or equal goal arrival can remain).
//
// Routes reached via different arrival headings may be tile-identical; they
// are returned as-is.
func FindAllOptimalPaths(g *maze.Grid, facing maze.Orientation, opts ...Option) (AllResult, error) {
	r, err := newRunner(g, facing, opts)
	if err != nil {
		return AllResult{}, err
	}
	if !r.reachable() {
		return AllResult{}, nil
	}

	var res AllResult
	for {
		e, ok := r.pop()
		if !ok {
			break
		}
		if len(res.Routes) > 0 && e.F > res.Cost {
			break
		}
		if e.State.Pos == r.goal {
			if len(res.Routes) == 0 {
				res.Cost = e.G
			}
			if e.G == res.Cost {
				res.Routes = append(res.Routes, Reconstruct(r.ledger, e.State))
				res.Arrivals = append(res.Arrivals, e.State.Facing)
			}
			continue
		}
		r.expand(e)
	}
	res.Expanded = r.expanded

	r.log.WithFields(logrus.Fields{"cost": res.Cost, "routes": len(res.Routes), "expanded": res.Expanded}).
		Debug("search: all optimal routes collected")
	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	grid     *maze.Grid         // read-only input
	opts     Options            // configuration (cost model, hooks)
	start    State              // seeded start state
	goal     maze.Position      // target tile
	ledger   *Ledger            // best costs + predecessors
	frontier *Frontier          // min-f queue with lazy decrease-key
	log      logrus.FieldLogger // scoped to start, facing and goal
	expanded int                // non-stale pops
}

// newRunner validates inputs and seeds the ledger and frontier.
func newRunner(g *maze.Grid, facing maze.Orientation, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !facing.Valid() {
		return nil, ErrBadOrientation
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	h, w := g.Dimensions()
	r := &runner{
		grid:     g,
		opts:     o,
		start:    State{Pos: g.Start(), Facing: facing},
		goal:     g.End(),
		ledger:   NewLedger(h * w),
		frontier: NewFrontier(h * w),
	}
	r.log = o.Logger.WithFields(logrus.Fields{"start": r.start.Pos, "facing": facing, "goal": r.goal})

	r.ledger.Seed(r.start)
	r.frontier.Push(r.start, 0, o.Cost.Heuristic(r.start.Pos, r.goal))
	r.log.Debug("search: started")

	return r, nil
}

// reachable applies the optional region pre-check.
func (r *runner) reachable() bool {
	if !r.opts.RegionCheck || r.grid.Connected(r.start.Pos, r.goal) {
		return true
	}
	r.log.Debug("search: goal outside start region")
	return false
}

// pop returns the next non-stale entry and fires OnPop.
func (r *runner) pop() (Entry, bool) {
	for {
		e, ok := r.frontier.Pop()
		if !ok {
			return Entry{}, false
		}
		if best, _ := r.ledger.Cost(e.State); e.G > best {
			continue // superseded by a cheaper push
		}
		r.expanded++
		r.opts.OnPop(e.State, e.G, e.F)
		return e, true
	}
}

// expand relaxes the four cardinal moves out of e.
func (r *runner) expand(e Entry) {
	model := r.opts.Cost
	for _, heading := range maze.Orientations() {
		next := e.State.Pos.Step(heading)
		if !r.grid.Traversable(next) {
			continue
		}
		ns := State{Pos: next, Facing: heading}
		tentative := e.G + model.Edge(e.State.Facing, heading)
		if r.ledger.Relax(ns, e.State, tentative) {
			r.frontier.Push(ns, tentative, tentative+model.Heuristic(next, r.goal))
		}
	}
}
