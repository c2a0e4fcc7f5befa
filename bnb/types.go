// SPDX-License-Identifier: MIT

package bnb

import (
	"errors"
	"log/slog"
)

// ErrNilProblem is returned when Solve or Exhaustive receive a nil Problem.
var ErrNilProblem = errors.New("bnb: problem is nil")

// Problem is the domain policy plugged into the engine.
//
// S is the state value; states must be treated as immutable once returned
// from Root or Expand. K is the deduplication key: two states with equal
// keys must have identical continuations, so only their accumulated reward
// may differ.
type Problem[S any, K comparable] interface {
	// Root returns the state at elapsed time 0.
	Root() S

	// Expand returns every legal successor of s. An empty result marks s as
	// terminal and its reward becomes a candidate answer.
	Expand(s S) []S

	// Bound returns an optimistic total reward for any completion of s:
	// never below Reward of the best terminal reachable from s.
	Bound(s S) int

	// Reward returns the reward accumulated (committed) by s.
	Reward(s S) int

	// Key returns the deduplication key of s.
	Key(s S) K
}

// Stats counts engine events for one run.
type Stats struct {
	Expanded     int // states passed to Expand
	Generated    int // children returned by Expand
	Pruned       int // states or children dropped by the bound
	Deduplicated int // states or children dropped by the expanded-set
	Terminals    int // terminal states evaluated as candidates
	PeakFrontier int // largest frontier size observed
}

// Result is the outcome of a run.
type Result[S any] struct {
	// Reward is the incumbent when the frontier emptied; 0 if no terminal
	// state ever beat 0.
	Reward int

	// Best is the terminal state that produced Reward. Valid only if Found.
	Best S

	// Found reports whether some terminal state improved on 0.
	Found bool

	Stats Stats
}

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds the engine knobs.
type Options struct {
	// Logger receives Debug records for new incumbents and the run summary.
	Logger *slog.Logger

	// Dedup enables the expanded-set. Disabling it is only useful to
	// measure its effect.
	Dedup bool

	// OnIncumbent is called whenever the incumbent strictly improves.
	OnIncumbent func(reward int)
}

// DefaultOptions returns Options with a discarding logger, deduplication on
// and a no-op incumbent hook.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.DiscardHandler),
		Dedup:       true,
		OnIncumbent: func(int) {},
	}
}

// WithLogger routes engine logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDedup toggles the expanded-set.
func WithDedup(on bool) Option {
	return func(o *Options) { o.Dedup = on }
}

// WithOnIncumbent installs a hook called on each strict improvement.
func WithOnIncumbent(fn func(reward int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIncumbent = fn
		}
	}
}
