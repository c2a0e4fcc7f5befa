// SPDX-License-Identifier: MIT

package release

import (
	"cmp"
	"slices"
)

// Agent is one actor of a joint state.
type Agent struct {
	T     int   // elapsed time of this agent
	Site  int   // point index
	Idle  bool  // the agent has stopped for the rest of the horizon
	Order []int // activation order, point indices
}

// JointState is the search node of two agents sharing the activated set.
// The pair is unordered: swapping Agents yields an equal key.
type JointState struct {
	Agents [2]Agent
	Open   uint64
	Reward int
	Bound  int
}

type agentKey struct {
	t, site int
	idle    bool
}

func compareAgentKeys(a, b agentKey) int {
	if c := cmp.Compare(a.t, b.t); c != 0 {
		return c
	}
	if c := cmp.Compare(a.site, b.site); c != 0 {
		return c
	}
	switch {
	case a.idle == b.idle:
		return 0
	case !a.idle:
		return -1
	default:
		return 1
	}
}

// JointKey identifies joint states regardless of agent order.
type JointKey struct {
	lo, hi agentKey
	open   uint64
}

// DualProblem is the two-agent release-network policy for bnb.Solve. Both
// agents start on the start site at t=0.
type DualProblem struct {
	single *Problem
}

// NewDualProblem prepares a two-agent search over net. horizon is the
// effective horizon, already shortened by any setup overhead.
func NewDualProblem(net *Network, horizon int) (*DualProblem, error) {
	p, err := NewProblem(net, horizon)
	if err != nil {
		return nil, err
	}

	return &DualProblem{single: p}, nil
}

// Root places both agents on the start site.
func (d *DualProblem) Root() JointState {
	s := d.single.start
	js := JointState{Agents: [2]Agent{{Site: s}, {Site: s}}}
	js.Bound = d.bound(js)

	return js
}

// Expand returns the cross product of both agents' moves, without pairs
// that activate the same site. A state where both agents idle is terminal.
func (d *DualProblem) Expand(js JointState) []JointState {
	a, b := js.Agents[0], js.Agents[1]
	if a.Idle && b.Idle {
		return nil
	}
	ma := d.moves(a, js.Open)
	mb := d.moves(b, js.Open)

	out := make([]JointState, 0, len(ma)*len(mb))
	for _, x := range ma {
		for _, y := range mb {
			if x.site >= 0 && x.site == y.site {
				continue
			}
			open := js.Open
			if x.site >= 0 {
				open |= bit(x.site)
			}
			if y.site >= 0 {
				open |= bit(y.site)
			}
			child := JointState{
				Agents: [2]Agent{x.agent, y.agent},
				Open:   open,
				Reward: js.Reward + x.gain + y.gain,
			}
			child.Bound = d.bound(child)
			out = append(out, child)
		}
	}

	return out
}

// Bound returns the cached optimistic total.
func (d *DualProblem) Bound(js JointState) int { return js.Bound }

// Reward returns the committed reward of both agents.
func (d *DualProblem) Reward(js JointState) int { return js.Reward }

// Key returns an order-independent key.
func (d *DualProblem) Key(js JointState) JointKey {
	ka := agentKey{t: js.Agents[0].T, site: js.Agents[0].Site, idle: js.Agents[0].Idle}
	kb := agentKey{t: js.Agents[1].T, site: js.Agents[1].Site, idle: js.Agents[1].Idle}
	if compareAgentKeys(kb, ka) < 0 {
		ka, kb = kb, ka
	}

	return JointKey{lo: ka, hi: kb, open: js.Open}
}

// move is one agent's option within a joint step. site is -1 when the
// option activates nothing.
type move struct {
	agent Agent
	site  int
	gain  int
}

// moves lists the options of one agent: every activation it could make on
// its own against the shared activated set, plus idling until the horizon.
// An agent that already idles can only keep idling.
func (d *DualProblem) moves(ag Agent, open uint64) []move {
	if ag.Idle {
		return []move{{agent: ag, site: -1}}
	}
	p := d.single
	var out []move
	var q int
	for q = 0; q < len(p.rates); q++ {
		at, ok := p.activation(ag.T, ag.Site, open, q)
		if !ok {
			continue
		}
		out = append(out, move{
			agent: Agent{T: at, Site: q, Order: append(slices.Clone(ag.Order), q)},
			site:  q,
			gain:  p.gain(q, at),
		})
	}
	out = append(out, move{
		agent: Agent{T: p.horizon, Site: ag.Site, Idle: true, Order: slices.Clone(ag.Order)},
		site:  -1,
	})

	return out
}

// bound adds each active agent's independent optimistic extra to the
// committed reward. Both extras draw on the same unactivated points, so the
// sum overestimates what two coordinated agents can achieve.
func (d *DualProblem) bound(js JointState) int {
	total := js.Reward
	for _, ag := range js.Agents {
		if ag.Idle {
			continue
		}
		total += d.single.optimistic(ag.T, ag.Site, js.Open)
	}

	return total
}
