// SPDX-License-Identifier: MIT

package bnb_test

import "math/rand"

// walk is a small test domain: a token moves on a line of width cells for
// horizon steps, shifting by -1, 0 or +1 each step and collecting
// values[t][pos] on arrival. The best total is a longest path in a layered
// DAG, so Exhaustive is always tractable for the sizes used here.
type walk struct {
	width   int
	horizon int
	start   int
	values  [][]int // values[t][pos], t in 1..horizon
	suffix  []int   // suffix[t] = Σ_{u≥t} max(values[u])
	loose   bool    // use the trivial (but still admissible) bound
}

type walkState struct {
	t, pos, reward int
	path           []int
}

type walkKey struct{ t, pos int }

func newWalk(width, horizon, start int, values [][]int) *walk {
	w := &walk{width: width, horizon: horizon, start: start, values: values}
	w.suffix = make([]int, horizon+2)
	for t := horizon; t >= 1; t-- {
		best := 0
		for _, v := range values[t] {
			best = max(best, v)
		}
		w.suffix[t] = w.suffix[t+1] + best
	}

	return w
}

func randomWalk(rng *rand.Rand, width, horizon int) *walk {
	values := make([][]int, horizon+1)
	for t := 1; t <= horizon; t++ {
		values[t] = make([]int, width)
		for p := range values[t] {
			values[t][p] = rng.Intn(10)
		}
	}

	return newWalk(width, horizon, rng.Intn(width), values)
}

func (w *walk) Root() walkState { return walkState{pos: w.start} }

func (w *walk) Expand(s walkState) []walkState {
	if s.t >= w.horizon {
		return nil
	}
	var out []walkState
	for d := -1; d <= 1; d++ {
		p := s.pos + d
		if p < 0 || p >= w.width {
			continue
		}
		path := append(append([]int(nil), s.path...), p)
		out = append(out, walkState{t: s.t + 1, pos: p, reward: s.reward + w.values[s.t+1][p], path: path})
	}

	return out
}

func (w *walk) Bound(s walkState) int {
	if w.loose {
		return s.reward + 9*(w.horizon-s.t)
	}

	return s.reward + w.suffix[s.t+1]
}

func (w *walk) Reward(s walkState) int { return s.reward }

func (w *walk) Key(s walkState) walkKey { return walkKey{t: s.t, pos: s.pos} }
