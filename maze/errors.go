// SPDX-License-Identifier: MIT

package maze

import "errors"

// ErrParse is wrapped by every error returned while building a Grid,
// so callers can test errors.Is(err, ErrParse) for any malformed input.
var ErrParse = errors.New("maze: parse error")

// Sentinel errors for grid construction. Each one wraps ErrParse.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = parseErr("input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = parseErr("all rows must have the same length")
	// ErrUnknownSymbol indicates a character outside the maze alphabet.
	ErrUnknownSymbol = parseErr("unrecognized symbol")
	// ErrMissingStart indicates no Start cell was found.
	ErrMissingStart = parseErr("no start cell")
	// ErrMissingEnd indicates no End cell was found.
	ErrMissingEnd = parseErr("no end cell")
	// ErrMultipleStart indicates more than one Start cell.
	ErrMultipleStart = parseErr("more than one start cell")
	// ErrMultipleEnd indicates more than one End cell.
	ErrMultipleEnd = parseErr("more than one end cell")
)

// kindError is a sentinel that also matches ErrParse under errors.Is.
type kindError struct{ msg string }

func parseErr(msg string) error { return &kindError{msg: "maze: " + msg} }

func (e *kindError) Error() string { return e.msg }

// Is reports ErrParse as an ancestor of every construction sentinel.
func (e *kindError) Is(target error) bool { return target == ErrParse }
