// SPDX-License-Identifier: MIT

package maze

// Regions returns the 4-connected components ("regions") of traversable
// cells. Positions within a region, and the regions themselves, are
// ordered row-major by their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and output.
func (g *Grid) Regions() [][]Position {
	labels := g.regionLabels()
	var out [][]Position
	for i, l := range labels {
		if l < 0 {
			continue
		}
		for l >= len(out) {
			out = append(out, nil)
		}
		out[l] = append(out[l], g.position(i))
	}
	return out
}

// Connected reports whether a and b are both traversable and lie in the
// same region. A search between disconnected cells can never succeed.
// The labelling is computed once per Grid and cached.
func (g *Grid) Connected(a, b Position) bool {
	if !g.Traversable(a) || !g.Traversable(b) {
		return false
	}
	labels := g.regionLabels()
	return labels[g.index(a)] == labels[g.index(b)]
}

// regionLabels lazily computes a row-major region label per cell
// (-1 for walls) with one BFS per unlabelled traversable cell.
func (g *Grid) regionLabels() []int {
	g.regionsOnce.Do(func() {
		total := g.width * g.height
		labels := make([]int, total)
		for i := range labels {
			labels[i] = -1
		}
		next := 0
		queue := make([]int, 0, total)

		for i0 := 0; i0 < total; i0++ {
			if labels[i0] >= 0 || !g.Traversable(g.position(i0)) {
				continue
			}
			// BFS to flood the region
			labels[i0] = next
			queue = append(queue[:0], i0)
			for qi := 0; qi < len(queue); qi++ {
				for _, q := range g.Neighbors(g.position(queue[qi])) {
					j := g.index(q)
					if labels[j] < 0 {
						labels[j] = next
						queue = append(queue, j)
					}
				}
			}
			next++
		}
		g.regions = labels
	})
	return g.regions
}
