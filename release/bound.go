// SPDX-License-Identifier: MIT

package release

// optimistic returns an upper bound on the reward still obtainable by one
// agent standing on site at time t with the given activated set.
//
// Unactivated points of interest are taken by rate descending (point order)
// and activated at the earliest conceivable slots: one travel step plus one
// activation step each, so t+2, t+4, …; when the agent stands on an
// unactivated point of interest the first slot is t+1 and the rest follow
// every two steps. Real distances can only delay activations, and giving
// the earliest slots to the highest rates maximizes the sum, so the result
// never underestimates.
func (p *Problem) optimistic(t, site int, open uint64) int {
	lead := 0
	if site < len(p.rates) && open&bit(site) == 0 {
		lead = 1
	}
	var (
		sum, slot, at int
		q             int
	)
	for q = 0; q < len(p.rates); q++ {
		if open&bit(q) != 0 {
			continue
		}
		slot++
		at = t + 2*slot - lead
		if at >= p.horizon {
			break
		}
		sum += p.gain(q, at)
	}

	return sum
}
