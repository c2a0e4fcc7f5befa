// SPDX-License-Identifier: MIT

package economy

// optimistic returns an upper bound on the terminal stock at the horizon
// for a state at time t.
//
// Relaxation: walk the remaining steps in dependency order, building one
// producer of every kind whose cost is covered, without paying. By
// induction the relaxed stock and producers never fall below the real ones
// (anything the real process can afford, the relaxed one can too), so the
// relaxed terminal stock dominates.
//
// At most one producer is built per real step, so the terminal stock is
// also at most stock + rate·rem + rem·(rem-1)/2; the smaller value wins.
func (p *Problem) optimistic(t int, held, rate Vector) int {
	rem := p.horizon - t
	if rem <= 0 {
		return held[p.terminal]
	}

	h, r := held, rate
	var step, k int
	for step = 0; step < rem; step++ {
		next := r
		for k = 0; k < p.bp.Kinds; k++ {
			if h.Covers(p.bp.Costs[k]) {
				next[k]++
			}
		}
		h = h.Add(r)
		r = next
	}
	relaxed := h[p.terminal]

	triangle := held[p.terminal] + rate[p.terminal]*rem + rem*(rem-1)/2

	return min(relaxed, triangle)
}
