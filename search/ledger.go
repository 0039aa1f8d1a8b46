// SPDX-License-Identifier: MIT

package search

// Ledger records, for one search, the best known cumulative cost of every
// discovered state and the state that cost was derived from.
//
// Invariants:
//   - A cost only ever decreases, and only on a strictly cheaper route.
//   - A predecessor's cost is strictly less than its successor's, so
//     following predecessors always terminates at the seeded start state.
type Ledger struct {
	g    map[State]int64
	prev map[State]State
}

// NewLedger returns an empty ledger sized for about sizeHint states.
func NewLedger(sizeHint int) *Ledger {
	return &Ledger{
		g:    make(map[State]int64, sizeHint),
		prev: make(map[State]State, sizeHint),
	}
}

// Seed records s as a start state: cost 0 and no predecessor.
func (l *Ledger) Seed(s State) {
	l.g[s] = 0
	delete(l.prev, s)
}

// Cost returns the best known cost of s; ok is false if s is undiscovered.
func (l *Ledger) Cost(s State) (g int64, ok bool) {
	g, ok = l.g[s]
	return g, ok
}

// Relax records g as the cost of s, reached from `from`, if s is
// undiscovered or g is strictly cheaper than its current cost.
// Reports whether the ledger changed.
func (l *Ledger) Relax(s, from State, g int64) bool {
	if cur, ok := l.g[s]; ok && g >= cur {
		return false
	}
	l.g[s] = g
	l.prev[s] = from
	return true
}

// Predecessor returns the state s's current cost was derived from;
// ok is false for the start state and undiscovered states.
func (l *Ledger) Predecessor(s State) (p State, ok bool) {
	p, ok = l.prev[s]
	return p, ok
}

// Len returns the number of discovered states.
func (l *Ledger) Len() int { return len(l.g) }
