// SPDX-License-Identifier: MIT

package maze

import (
	"io"
	"strings"
)

// RouteMark is the character Render draws on route tiles.
const RouteMark = 'O'

// Render draws the grid with every tile of every route replaced by
// RouteMark. Each row ends with a newline.
func (g *Grid) Render(routes ...[]Position) string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	_ = g.RenderTo(&sb, routes...)
	return sb.String()
}

// RenderTo writes the rendering produced by Render to w.
func (g *Grid) RenderTo(w io.Writer, routes ...[]Position) error {
	marked := make([]bool, g.width*g.height)
	for _, route := range routes {
		for _, p := range route {
			if g.InBounds(p) {
				marked[g.index(p)] = true
			}
		}
	}

	line := make([]byte, 0, g.width+1)
	for r, row := range g.cells {
		line = line[:0]
		for c, cell := range row {
			ch := cell.Symbol()
			if marked[r*g.width+c] {
				ch = RouteMark
			}
			line = append(line, byte(ch))
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
