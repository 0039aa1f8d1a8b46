// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/turnpath/cost"
	"github.com/katalvlaran/turnpath/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrBadOrientation is returned for a start heading outside N/E/S/W.
	ErrBadOrientation = errors.New("search: invalid start orientation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// State is the unit of exploration: a tile plus the heading the agent
// faces on it. Two states are equal iff both fields match.
type State struct {
	Pos    maze.Position
	Facing maze.Orientation
}

// String implements fmt.Stringer.
func (s State) String() string { return fmt.Sprintf("%v/%v", s.Pos, s.Facing) }

// Route is a start-to-goal ordered sequence of tiles.
type Route []maze.Position

// Result is the outcome of FindOptimalPath.
//   - Found:    false when the goal is unreachable (Route is nil, Cost is 0).
//   - Route:    one minimum-cost route, start first.
//   - Cost:     its total cost under the configured cost.Model.
//   - Arrival:  heading on the goal tile.
//   - Expanded: number of states popped from the frontier.
type Result struct {
	Found    bool
	Route    Route
	Cost     int64
	Arrival  maze.Orientation
	Expanded int
}

// AllResult is the outcome of FindAllOptimalPaths. Routes[i] arrives on the
// goal facing Arrivals[i]; every route costs Cost. Routes is empty when the
// goal is unreachable.
type AllResult struct {
	Routes   []Route
	Arrivals []maze.Orientation
	Cost     int64
	Expanded int
}

// Found reports whether at least one route was collected.
func (r AllResult) Found() bool { return len(r.Routes) > 0 }

// Option configures a search via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds the parameters and hooks of a search.
type Options struct {
	// Cost prices turns and steps. Default: cost.Default().
	Cost cost.Model

	// Logger receives Debug entries at search start and end.
	// Default: a logrus logger writing to io.Discard.
	Logger logrus.FieldLogger

	// OnPop is called for every non-stale frontier pop, before the goal
	// check, with the state's g- and f-scores. Under Solve it is called from
	// several goroutines at once.
	OnPop func(s State, g, f int64)

	// RegionCheck rejects a start whose region does not contain the goal
	// before any state is expanded. Default: true.
	RegionCheck bool

	// internal error recorded during option parsing
	err error
}

var discardLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns Options with the default cost model, a silent
// logger, a no-op OnPop hook and the region pre-check enabled.
func DefaultOptions() Options {
	return Options{
		Cost:        cost.Default(),
		Logger:      discardLogger,
		OnPop:       func(State, int64, int64) {},
		RegionCheck: true,
	}
}

// WithCostModel replaces the cost model; an invalid model is an option violation.
func WithCostModel(m cost.Model) Option {
	return func(o *Options) {
		if err := m.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Cost = m
	}
}

// WithTurnPenalty is shorthand for a cost model with the given penalty and
// the current step cost.
func WithTurnPenalty(p int64) Option {
	return func(o *Options) {
		m := o.Cost
		m.TurnPenalty = p
		WithCostModel(m)(o)
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPop registers a callback invoked on every non-stale pop.
func WithOnPop(fn func(s State, g, f int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithoutRegionCheck disables the connectivity pre-check, forcing the
// search to exhaust the reachable state space when the goal is unreachable.
func WithoutRegionCheck() Option {
	return func(o *Options) { o.RegionCheck = false }
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// ValidateOptions reports the first invalid option in opts, if any.
func ValidateOptions(opts ...Option) error {
	_, err := buildOptions(opts)
	return err
}
