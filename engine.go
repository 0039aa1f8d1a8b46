// SPDX-License-Identifier: MIT

package turnpath

import (
	"context"
	"errors"
	"io"

	"github.com/katalvlaran/turnpath/maze"
	"github.com/katalvlaran/turnpath/search"
	"github.com/katalvlaran/turnpath/tiles"
)

// ErrNilGrid is returned by New when no grid is supplied.
var ErrNilGrid = errors.New("turnpath: grid is nil")

// Engine binds one parsed maze to a fixed set of search options.
// It holds no mutable state, so its methods may be called concurrently.
type Engine struct {
	grid *maze.Grid
	opts []search.Option
}

// New returns an Engine over g. Options are validated once here and
// applied to every query.
func New(g *maze.Grid, opts ...search.Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := search.ValidateOptions(opts...); err != nil {
		return nil, err
	}
	return &Engine{grid: g, opts: opts}, nil
}

// Load parses a maze from r and returns an Engine over it.
// Malformed input yields an error matching maze.ErrParse.
func Load(r io.Reader, opts ...search.Option) (*Engine, error) {
	g, err := maze.Read(r)
	if err != nil {
		return nil, err
	}
	return New(g, opts...)
}

// Grid returns the engine's maze.
func (e *Engine) Grid() *maze.Grid { return e.grid }

// FindOptimalPath returns one cheapest route starting with facing o.
// Result.Found is false when the end is unreachable.
func (e *Engine) FindOptimalPath(o maze.Orientation) (search.Result, error) {
	return search.FindOptimalPath(e.grid, o, e.opts...)
}

// FindAllOptimalPaths returns every cheapest route starting with facing o,
// one per arrival heading.
func (e *Engine) FindAllOptimalPaths(o maze.Orientation) (search.AllResult, error) {
	return search.FindAllOptimalPaths(e.grid, o, e.opts...)
}

// CountAdjacentTiles counts the floor tiles touching, but not on, routes.
func (e *Engine) CountAdjacentTiles(routes ...search.Route) int {
	return tiles.CountAdjacent(e.grid, routes...)
}

// Solve picks the cheapest start heading for an agent initially facing
// `facing`, pricing the in-place turn to that heading.
func (e *Engine) Solve(ctx context.Context, facing maze.Orientation) (search.Best, error) {
	return search.Solve(ctx, e.grid, facing, e.opts...)
}

// Render draws routes over the maze.
func (e *Engine) Render(routes ...search.Route) string {
	plain := make([][]maze.Position, len(routes))
	for i, r := range routes {
		plain[i] = r
	}
	return e.grid.Render(plain...)
}
