// SPDX-License-Identifier: MIT

package economy

import (
	"fmt"
	"slices"
)

// Problem is the production-economy policy for bnb.Solve.
type Problem struct {
	bp       Blueprint
	horizon  int
	terminal int
	initial  Vector
	maxSpend Vector // per kind, the largest amount one build can spend
	opts     Options
}

// State is one node of the search.
type State struct {
	T      int    // elapsed steps
	Held   Vector // resources on hand
	Rate   Vector // producers owned, i.e. production per step
	Bound  int    // cached optimistic terminal total
	Builds []Build
}

// StateKey identifies states with identical continuations.
type StateKey struct {
	t          int
	held, rate Vector
}

// NewProblem validates bp and prepares a search over horizon steps.
func NewProblem(bp Blueprint, horizon int, opts ...Option) (*Problem, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	if horizon < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizon)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Problem{
		bp:       bp,
		horizon:  horizon,
		terminal: bp.Terminal(),
		initial:  bp.producers(),
		opts:     cfg,
	}
	var k, r int
	for k = 0; k < bp.Kinds; k++ {
		for r = 0; r < bp.Kinds; r++ {
			p.maxSpend[r] = max(p.maxSpend[r], bp.Costs[k][r])
		}
	}

	return p, nil
}

// Horizon returns the time budget.
func (p *Problem) Horizon() int { return p.horizon }

// Root returns the initial producers with empty stock at t=0.
func (p *Problem) Root() State {
	return p.state(0, Vector{}, p.initial, nil)
}

// Expand returns one child per affordable producer kind plus the
// build-nothing child. A state at the horizon has no children.
func (p *Problem) Expand(s State) []State {
	if s.T >= p.horizon {
		return nil
	}
	out := make([]State, 0, p.bp.Kinds+1)
	var k int
	for k = 0; k < p.bp.Kinds; k++ {
		if p.capped(s.Rate, k) {
			continue
		}
		held := s.Held
		if err := held.Pay(p.bp.Costs[k]); err != nil {
			continue
		}
		rate := s.Rate
		rate[k]++
		builds := append(slices.Clone(s.Builds), Build{T: s.T, Kind: k})
		out = append(out, p.state(s.T+1, held.Add(s.Rate), rate, builds))
	}
	out = append(out, p.state(s.T+1, s.Held.Add(s.Rate), s.Rate, slices.Clone(s.Builds)))

	return out
}

// Bound returns the cached optimistic total.
func (p *Problem) Bound(s State) int { return s.Bound }

// Reward returns the terminal total s is guaranteed to reach by waiting:
// current stock plus what its terminal producers yield until the horizon.
// At the horizon this is exactly the stock.
func (p *Problem) Reward(s State) int {
	return s.Held[p.terminal] + s.Rate[p.terminal]*(p.horizon-s.T)
}

// Key returns the deduplication key: time, stock and producers.
func (p *Problem) Key(s State) StateKey {
	return StateKey{t: s.T, held: s.Held, rate: s.Rate}
}

func (p *Problem) state(t int, held, rate Vector, builds []Build) State {
	return State{
		T:      t,
		Held:   held,
		Rate:   rate,
		Bound:  p.optimistic(t, held, rate),
		Builds: builds,
	}
}

// capped reports whether another producer of kind k is useless: one build
// per step can never spend more than maxSpend[k] of resource k.
func (p *Problem) capped(rate Vector, k int) bool {
	if !p.opts.ProducerCap || k == p.terminal {
		return false
	}

	return rate[k] >= p.maxSpend[k]
}
