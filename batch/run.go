// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Run executes jobs on a bounded worker pool and returns one Outcome per
// job, in input order. ids[i] becomes Outcome.ID; a nil ids slice numbers
// jobs from 1.
//
// The first job error cancels the batch and is returned wrapped with the
// instance index. A cancelled ctx stops jobs that have not started yet.
func Run(ctx context.Context, domain string, jobs []Job, ids []int, opts ...Option) ([]Outcome, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ids != nil && len(ids) != len(jobs) {
		return nil, fmt.Errorf("%w: %d ids for %d jobs", ErrIDCount, len(ids), len(jobs))
	}

	runID := uuid.NewString()[:8]
	log := cfg.Logger.With(slog.String("run_id", runID), slog.String("domain", domain))
	log.Info("batch started", slog.Int("instances", len(jobs)), slog.Int("workers", cfg.Workers))
	start := time.Now()

	out := make([]Outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, job := range jobs {
		id := i + 1
		if ids != nil {
			id = ids[i]
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			reward, st, err := job()
			elapsed := time.Since(t0)
			if err != nil {
				cfg.Recorder.Failed(domain)
				log.Warn("instance failed", slog.Int("id", id), slog.Any("error", err))
				return fmt.Errorf("batch: instance %d: %w", id, err)
			}
			cfg.Recorder.Observe(domain, st, elapsed)
			out[i] = Outcome{Index: i, ID: id, Reward: reward, Stats: st, Elapsed: elapsed}
			log.Debug("instance solved",
				slog.Int("id", id),
				slog.Int("reward", reward),
				slog.Int("expanded", st.Expanded),
				slog.Duration("elapsed", elapsed),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("batch finished",
		slog.Int("instances", len(jobs)),
		slog.Int("sum", Sum(out)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}
