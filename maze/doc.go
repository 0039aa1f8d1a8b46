// SPDX-License-Identifier: MIT

// Package maze models a rectilinear maze as an immutable grid of cells,
// with designated start and end tiles.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell with exactly one Start and one End.
//   - Position, Orientation and Cell are the value types shared by the
//     cost model, the search and the tile counters.
//   - Read, FromLines and FromSeq turn any line source ("#", ".", "S", "E")
//     into a Grid; the reader is injected, files are the caller's business.
//   - Regions / Connected answer 4-connected reachability in O(W×H),
//     letting the search reject sealed starts before it expands anything.
//   - Render draws one or more routes over the grid as "O" tiles.
//
// Complexity:
//
//   - New / Read:      O(W×H) time and memory.
//   - Traversable:     O(1).
//   - Regions:         O(W×H) time, O(W×H) memory (computed once, cached).
//   - Render:          O(W×H + R) where R is the total route length.
//
// Errors:
//
//   - ErrParse:          umbrella sentinel wrapped by every loading failure.
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol:  a character outside "#.SE" was found.
//   - ErrMissingStart / ErrMissingEnd:   no S / E tile.
//   - ErrMultipleStart / ErrMultipleEnd: more than one S / E tile.
package maze
