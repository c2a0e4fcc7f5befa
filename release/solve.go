// SPDX-License-Identifier: MIT

package release

import "github.com/katalvlaran/horizon/bnb"

// Plan is the best single-agent schedule found.
type Plan struct {
	Reward int
	Order  []string // activated site ids, in activation order
	Stats  bnb.Stats
}

// DualPlan is the best two-agent schedule found.
type DualPlan struct {
	Reward int
	Orders [2][]string
	Stats  bnb.Stats
}

// Solve returns the maximum reward one agent can release from net within
// horizon time steps.
func Solve(net *Network, horizon int, opts ...bnb.Option) (Plan, error) {
	p, err := NewProblem(net, horizon)
	if err != nil {
		return Plan{}, err
	}

	return p.Solve(opts...)
}

// Solve runs the engine on a prepared problem.
func (p *Problem) Solve(opts ...bnb.Option) (Plan, error) {
	res, err := bnb.Solve[State, StateKey](p, opts...)
	if err != nil {
		return Plan{}, err
	}
	plan := Plan{Reward: res.Reward, Order: []string{}, Stats: res.Stats}
	if res.Found {
		plan.Order = p.names(res.Best.Order)
	}

	return plan, nil
}

// SolveDual returns the maximum joint reward two agents can release from
// net within horizon time steps. horizon is the effective horizon.
func SolveDual(net *Network, horizon int, opts ...bnb.Option) (DualPlan, error) {
	d, err := NewDualProblem(net, horizon)
	if err != nil {
		return DualPlan{}, err
	}

	return d.Solve(opts...)
}

// Solve runs the engine on a prepared two-agent problem.
func (d *DualProblem) Solve(opts ...bnb.Option) (DualPlan, error) {
	res, err := bnb.Solve[JointState, JointKey](d, opts...)
	if err != nil {
		return DualPlan{}, err
	}
	plan := DualPlan{Reward: res.Reward, Orders: [2][]string{{}, {}}, Stats: res.Stats}
	if res.Found {
		plan.Orders[0] = d.single.names(res.Best.Agents[0].Order)
		plan.Orders[1] = d.single.names(res.Best.Agents[1].Order)
	}

	return plan, nil
}
