// SPDX-License-Identifier: MIT

package release

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/horizon/distance"
)

// Problem is the single-agent release-network policy for bnb.Solve.
//
// Sites are addressed by point index: points of interest first (by rate
// descending), then the start site if it carries no rate. Point i < Points()
// owns bit i of the activated set.
type Problem struct {
	horizon int
	ids     []string
	rates   []int // rates[i] for points of interest
	dist    *distance.Matrix
	start   int
}

// State is one node of the single-agent search.
type State struct {
	T      int    // elapsed time
	Site   int    // point index of the agent
	Open   uint64 // activated points of interest
	Reward int    // reward committed by the activations so far
	Bound  int    // cached optimistic total
	Order  []int  // activation order, point indices
}

// StateKey identifies states with identical continuations.
type StateKey struct {
	t, site int
	open    uint64
}

// NewProblem prepares the distance oracle and ranking for net.
func NewProblem(net *Network, horizon int) (*Problem, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if horizon < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizon)
	}
	ids := net.PointsOfInterest()
	rates := make([]int, len(ids))
	for i, id := range ids {
		s, _ := net.Site(id)
		rates[i] = s.Rate
	}
	start := slices.Index(ids, net.Start())
	if start < 0 {
		start = len(ids)
		ids = append(ids, net.Start())
	}

	dist, err := distance.Build(net.Graph(), ids)
	if err != nil {
		return nil, fmt.Errorf("release: distance oracle: %w", err)
	}

	return &Problem{
		horizon: horizon,
		ids:     ids,
		rates:   rates,
		dist:    dist,
		start:   start,
	}, nil
}

// Horizon returns the time budget.
func (p *Problem) Horizon() int { return p.horizon }

// Points returns the number of points of interest.
func (p *Problem) Points() int { return len(p.rates) }

// SiteID maps a point index back to its site id.
func (p *Problem) SiteID(i int) string { return p.ids[i] }

// Root returns the agent at the start site at t=0 with nothing activated.
func (p *Problem) Root() State {
	return State{
		Site:  p.start,
		Bound: p.optimistic(0, p.start, 0),
	}
}

// Expand returns one child per reachable unactivated point of interest, or
// a single wait-to-horizon child when nothing fits the remaining time.
// A state at the horizon has no children.
func (p *Problem) Expand(s State) []State {
	if s.T >= p.horizon {
		return nil
	}
	var out []State
	var q int
	for q = 0; q < len(p.rates); q++ {
		at, ok := p.activation(s.T, s.Site, s.Open, q)
		if !ok {
			continue
		}
		open := s.Open | bit(q)
		reward := s.Reward + p.gain(q, at)
		out = append(out, State{
			T:      at,
			Site:   q,
			Open:   open,
			Reward: reward,
			Bound:  reward + p.optimistic(at, q, open),
			Order:  append(slices.Clone(s.Order), q),
		})
	}
	if len(out) == 0 {
		out = append(out, State{
			T:      p.horizon,
			Site:   s.Site,
			Open:   s.Open,
			Reward: s.Reward,
			Bound:  s.Reward,
			Order:  slices.Clone(s.Order),
		})
	}

	return out
}

// Bound returns the cached optimistic total.
func (p *Problem) Bound(s State) int { return s.Bound }

// Reward returns the committed reward.
func (p *Problem) Reward(s State) int { return s.Reward }

// Key returns the deduplication key: time, position and activated set.
func (p *Problem) Key(s State) StateKey { return StateKey{t: s.T, site: s.Site, open: s.Open} }

// activation returns the time at which point q would be activated from
// site at time t, if q is unactivated, reachable and fits the horizon.
func (p *Problem) activation(t, site int, open uint64, q int) (int, bool) {
	if open&bit(q) != 0 {
		return 0, false
	}
	d, ok := p.dist.At(site, q)
	if !ok {
		return 0, false
	}
	at := t + d + 1
	if at > p.horizon {
		return 0, false
	}

	return at, true
}

// gain is the reward of activating point q at time at.
func (p *Problem) gain(q, at int) int { return p.rates[q] * (p.horizon - at) }

// names maps a sequence of point indices to site ids.
func (p *Problem) names(order []int) []string {
	out := make([]string, len(order))
	for i, q := range order {
		out[i] = p.ids[q]
	}

	return out
}

func bit(q int) uint64 { return 1 << uint(q) }
