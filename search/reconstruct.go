// SPDX-License-Identifier: MIT

package search

// Reconstruct walks the ledger's predecessors back from terminal until it
// reaches a state with none (the start), then returns the visited tiles in
// start-to-terminal order.
// Complexity: O(route length).
func Reconstruct(l *Ledger, terminal State) Route {
	route := Route{terminal.Pos}
	// Predecessor costs strictly decrease, so the walk is bounded by the
	// number of discovered states.
	for cur, n := terminal, l.Len(); n >= 0; n-- {
		prev, ok := l.Predecessor(cur)
		if !ok {
			break
		}
		route = append(route, prev.Pos)
		cur = prev
	}
	// reverse to get start → terminal
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}
