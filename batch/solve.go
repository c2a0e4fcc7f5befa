// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/horizon/bnb"
	"github.com/katalvlaran/horizon/economy"
	"github.com/katalvlaran/horizon/release"
)

// SolveBlueprints solves every blueprint over horizon steps. Outcome.ID is
// the blueprint ID, or its 1-based position when the ID is zero.
func SolveBlueprints(ctx context.Context, bps []economy.Blueprint, horizon int, opts ...Option) ([]Outcome, error) {
	cfg := collect(opts)
	jobs := make([]Job, len(bps))
	ids := make([]int, len(bps))
	for i, bp := range bps {
		ids[i] = bp.ID
		if ids[i] == 0 {
			ids[i] = i + 1
		}
		eopts := append([]economy.Option{}, cfg.Economy...)
		eopts = append(eopts, economy.WithEngine(engineOptions(cfg, ids[i])...))
		jobs[i] = func() (int, bnb.Stats, error) {
			plan, err := economy.Solve(bp, horizon, eopts...)
			return plan.Reward, plan.Stats, err
		}
	}

	return Run(ctx, DomainEconomy, jobs, ids, opts...)
}

// SolveNetworks solves every network over horizon steps, with one agent or,
// when dual is set, two agents sharing the same (effective) horizon.
func SolveNetworks(ctx context.Context, nets []*release.Network, horizon int, dual bool, opts ...Option) ([]Outcome, error) {
	cfg := collect(opts)
	domain := DomainRelease
	if dual {
		domain = DomainReleaseDual
	}
	jobs := make([]Job, len(nets))
	for i, net := range nets {
		if net == nil {
			return nil, ErrNilNetwork
		}
		engine := engineOptions(cfg, i+1)
		jobs[i] = func() (int, bnb.Stats, error) {
			if dual {
				plan, err := release.SolveDual(net, horizon, engine...)
				return plan.Reward, plan.Stats, err
			}
			plan, err := release.Solve(net, horizon, engine...)
			return plan.Reward, plan.Stats, err
		}
	}

	return Run(ctx, domain, jobs, nil, opts...)
}

func collect(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// engineOptions tags engine logs with the instance id; caller options win.
func engineOptions(cfg Options, id int) []bnb.Option {
	out := []bnb.Option{bnb.WithLogger(cfg.Logger.With(slog.Int("id", id)))}

	return append(out, cfg.Engine...)
}
