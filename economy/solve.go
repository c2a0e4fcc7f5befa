// SPDX-License-Identifier: MIT

package economy

import (
	"fmt"

	"github.com/katalvlaran/horizon/bnb"
)

// Plan is the best build schedule found for one blueprint.
type Plan struct {
	Reward int
	Builds []Build
	Stats  bnb.Stats
}

// Solve returns the largest terminal stock reachable with bp in horizon
// steps, together with one build schedule achieving it.
func Solve(bp Blueprint, horizon int, opts ...Option) (Plan, error) {
	p, err := NewProblem(bp, horizon, opts...)
	if err != nil {
		return Plan{}, err
	}

	return p.Solve()
}

// Solve runs the engine on a prepared problem.
func (p *Problem) Solve() (Plan, error) {
	res, err := bnb.Solve[State, StateKey](p, p.opts.Engine...)
	if err != nil {
		return Plan{}, err
	}
	plan := Plan{Reward: res.Reward, Builds: []Build{}, Stats: res.Stats}
	if res.Found {
		plan.Builds = res.Best.Builds
	}

	return plan, nil
}

// Replay executes a build schedule step by step and returns the terminal
// stock at the horizon. Builds must be ordered by step, at most one per
// step, within the horizon, and affordable when issued.
func Replay(bp Blueprint, horizon int, builds []Build) (int, error) {
	if err := bp.Validate(); err != nil {
		return 0, err
	}
	if horizon < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizon)
	}
	held, rate := Vector{}, bp.producers()
	next := 0
	var t int
	for t = 0; t < horizon; t++ {
		if next < len(builds) && builds[next].T < t {
			return 0, fmt.Errorf("%w: build %d at step %d out of order", ErrBadPlan, next, builds[next].T)
		}
		if next < len(builds) && builds[next].T == t {
			b := builds[next]
			if b.Kind < 0 || b.Kind >= bp.Kinds {
				return 0, fmt.Errorf("%w: unknown kind %d", ErrBadPlan, b.Kind)
			}
			if err := held.Pay(bp.Costs[b.Kind]); err != nil {
				return 0, fmt.Errorf("step %d: %w", t, err)
			}
			held = held.Add(rate)
			rate[b.Kind]++
			next++
			continue
		}
		held = held.Add(rate)
	}
	if next < len(builds) {
		return 0, fmt.Errorf("%w: build %d at step %d beyond horizon %d", ErrBadPlan, next, builds[next].T, horizon)
	}

	return held[bp.Terminal()], nil
}
