// SPDX-License-Identifier: MIT

package cost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/turnpath/maze"
)

// Reference constants.
const (
	// DefaultTurnPenalty is charged per quarter-turn.
	DefaultTurnPenalty int64 = 1000
	// DefaultStepCost is charged per tile moved.
	DefaultStepCost int64 = 1
	// MaxParam caps TurnPenalty and StepCost so route costs on grids of up to
	// hundreds of millions of states stay within int64.
	MaxParam int64 = 1 << 32
)

// Sentinel errors for cost model validation.
var (
	// ErrBadTurnPenalty indicates a turn penalty outside [0, MaxParam].
	ErrBadTurnPenalty = errors.New("cost: TurnPenalty must be non-negative")
	// ErrBadStepCost indicates a step cost outside [1, MaxParam].
	ErrBadStepCost = errors.New("cost: StepCost must be at least 1")
	// ErrTurnPenaltyTooLarge indicates a turn penalty above MaxParam.
	ErrTurnPenaltyTooLarge = fmt.Errorf("%w and at most %d", ErrBadTurnPenalty, MaxParam)
	// ErrStepCostTooLarge indicates a step cost above MaxParam.
	ErrStepCostTooLarge = fmt.Errorf("%w and at most %d", ErrBadStepCost, MaxParam)
	// ErrBrokenRoute indicates two consecutive route tiles are not orthogonal neighbours.
	ErrBrokenRoute = errors.New("cost: route tiles are not adjacent")
)

// Model is a pure, immutable cost function over oriented moves.
type Model struct {
	TurnPenalty int64 // cost per quarter-turn
	StepCost    int64 // cost per tile moved
}

// Option configures a Model.
type Option func(*Model)

// WithTurnPenalty overrides the per-quarter-turn penalty.
func WithTurnPenalty(p int64) Option {
	return func(m *Model) { m.TurnPenalty = p }
}

// WithStepCost overrides the per-step cost.
func WithStepCost(c int64) Option {
	return func(m *Model) { m.StepCost = c }
}

// Default returns the standard model: penalty 1000, step 1.
func Default() Model {
	return Model{TurnPenalty: DefaultTurnPenalty, StepCost: DefaultStepCost}
}

// New returns Default() with opts applied, validated.
func New(opts ...Option) (Model, error) {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Validate checks the model's parameters.
func (m Model) Validate() error {
	if m.TurnPenalty < 0 {
		return fmt.Errorf("%w: got %d", ErrBadTurnPenalty, m.TurnPenalty)
	}
	if m.TurnPenalty > MaxParam {
		return fmt.Errorf("%w: got %d", ErrTurnPenaltyTooLarge, m.TurnPenalty)
	}
	if m.StepCost < 1 {
		return fmt.Errorf("%w: got %d", ErrBadStepCost, m.StepCost)
	}
	if m.StepCost > MaxParam {
		return fmt.Errorf("%w: got %d", ErrStepCostTooLarge, m.StepCost)
	}
	return nil
}

// TurnCost prices a heading change from → to.
func (m Model) TurnCost(from, to maze.Orientation) int64 {
	return int64(from.Turns(to)) * m.TurnPenalty
}

// Edge prices a single move: turning from the current heading to the
// move's heading, then stepping one tile.
func (m Model) Edge(from, to maze.Orientation) int64 {
	return m.TurnCost(from, to) + m.StepCost
}

// Heuristic estimates the remaining cost from a to b, ignoring turns.
func (m Model) Heuristic(a, b maze.Position) int64 {
	return int64(a.Manhattan(b)) * m.StepCost
}

// RouteCost prices route from scratch for an agent initially facing start.
// Consecutive tiles must be orthogonal neighbours; a route of zero or one
// tile costs nothing.
func (m Model) RouteCost(start maze.Orientation, route []maze.Position) (int64, error) {
	var total int64
	facing := start
	for i := 1; i < len(route); i++ {
		heading, ok := direction(route[i-1], route[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v → %v at index %d", ErrBrokenRoute, route[i-1], route[i], i)
		}
		total += m.Edge(facing, heading)
		facing = heading
	}
	return total, nil
}

// direction returns the heading of the single step a → b.
func direction(a, b maze.Position) (maze.Orientation, bool) {
	for _, o := range maze.Orientations() {
		if a.Step(o) == b {
			return o, true
		}
	}
	return maze.North, false
}
