// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/horizon/bnb"
	"github.com/katalvlaran/horizon/economy"
	"github.com/katalvlaran/horizon/metrics"
)

// Domain labels used for logs and metrics.
const (
	DomainRelease     = "release"
	DomainReleaseDual = "release_dual"
	DomainEconomy     = "economy"
)

// Aggregation names accepted by Aggregate.
const (
	AggregateSum     = "sum"
	AggregateProduct = "product"
	AggregateQuality = "quality"
)

// Sentinel errors.
var (
	ErrUnknownAggregate = errors.New("batch: unknown aggregation")
	ErrNilNetwork       = errors.New("batch: nil network")
	ErrIDCount          = errors.New("batch: ids do not match jobs")
)

// Job solves one instance and reports its reward and engine statistics.
type Job func() (reward int, st bnb.Stats, err error)

// Outcome is the result of one instance.
type Outcome struct {
	Index   int // position in the input
	ID      int // caller-facing identifier, 1-based unless the input carries one
	Reward  int
	Stats   bnb.Stats
	Elapsed time.Duration
}

// Option configures a batch.
type Option func(*Options)

// Options holds the batch knobs.
type Options struct {
	// Workers bounds concurrency; values ≤ 0 mean runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives batch and engine records. Defaults to discarding.
	Logger *slog.Logger

	// Recorder receives per-instance statistics. Nil records nothing.
	Recorder *metrics.Recorder

	// Engine is forwarded to every engine run.
	Engine []bnb.Option

	// Economy is forwarded to every economy.NewProblem.
	Economy []economy.Option
}

// DefaultOptions returns GOMAXPROCS workers, a discarding logger and no
// recorder.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the concurrency limit.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithLogger routes logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder forwards statistics to r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// WithEngine appends engine options.
func WithEngine(opts ...bnb.Option) Option {
	return func(o *Options) { o.Engine = append(o.Engine, opts...) }
}

// WithEconomy appends economy problem options.
func WithEconomy(opts ...economy.Option) Option {
	return func(o *Options) { o.Economy = append(o.Economy, opts...) }
}
