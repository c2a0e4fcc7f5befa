// SPDX-License-Identifier: MIT

package bnb

import "log/slog"

// phase is the engine lifecycle: initializing → searching → terminated.
type phase int

const (
	phaseInitializing phase = iota
	phaseSearching
	phaseTerminated
)

func (p phase) String() string {
	switch p {
	case phaseInitializing:
		return "initializing"
	case phaseSearching:
		return "searching"
	default:
		return "terminated"
	}
}

// engine holds all search data for one run. Nothing in it is shared with
// other runs.
type engine[S any, K comparable] struct {
	p    Problem[S, K]
	opts Options
	log  *slog.Logger

	phase    phase
	frontier *Frontier[S]
	expanded map[K]int // key → best reward expanded with that key

	incumbent int
	best      S
	found     bool

	stats Stats
}

// Solve runs best-first Branch-and-Bound on p and returns the best reward
// reachable from p.Root().
//
// Errors:
//   - ErrNilProblem if p is nil.
//
// The search itself never fails: every path reaches the horizon because
// elapsed time strictly increases along it.
func Solve[S any, K comparable](p Problem[S, K], opts ...Option) (Result[S], error) {
	if p == nil {
		return Result[S]{}, ErrNilProblem
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &engine[S, K]{
		p:        p,
		opts:     cfg,
		log:      cfg.Logger,
		frontier: NewFrontier[S](),
		expanded: make(map[K]int),
	}
	e.init()
	e.search()

	return Result[S]{
		Reward: e.incumbent,
		Best:   e.best,
		Found:  e.found,
		Stats:  e.stats,
	}, nil
}

// init enqueues the root state.
func (e *engine[S, K]) init() {
	root := e.p.Root()
	e.frontier.Push(root, e.p.Bound(root))
	e.stats.PeakFrontier = 1
	e.phase = phaseSearching
}

// search is the expand/prune loop. It returns once the frontier is empty.
func (e *engine[S, K]) search() {
	var (
		s     S
		bound int
		ok    bool
	)
	for {
		s, bound, ok = e.frontier.Pop()
		if !ok {
			break
		}

		// The incumbent may have risen since s was pushed.
		if bound <= e.incumbent {
			e.stats.Pruned++
			continue
		}
		if e.dominated(s) {
			e.stats.Deduplicated++
			continue
		}

		e.stats.Expanded++
		children := e.p.Expand(s)
		e.markExpanded(s)

		if len(children) == 0 {
			e.evaluate(s)
			continue
		}

		e.stats.Generated += len(children)
		for _, c := range children {
			cb := e.p.Bound(c)
			if cb <= e.incumbent {
				e.stats.Pruned++
				continue
			}
			if e.dominated(c) {
				e.stats.Deduplicated++
				continue
			}
			e.frontier.Push(c, cb)
		}
		if n := e.frontier.Len(); n > e.stats.PeakFrontier {
			e.stats.PeakFrontier = n
		}
	}
	e.phase = phaseTerminated

	e.log.Debug("search finished",
		slog.String("phase", e.phase.String()),
		slog.Int("reward", e.incumbent),
		slog.Int("expanded", e.stats.Expanded),
		slog.Int("generated", e.stats.Generated),
		slog.Int("pruned", e.stats.Pruned),
		slog.Int("deduplicated", e.stats.Deduplicated),
		slog.Int("peak_frontier", e.stats.PeakFrontier),
	)
}

// evaluate treats a terminal state as a candidate answer. Ties keep the
// earlier incumbent.
func (e *engine[S, K]) evaluate(s S) {
	e.stats.Terminals++
	r := e.p.Reward(s)
	if r <= e.incumbent {
		return
	}
	e.incumbent = r
	e.best = s
	e.found = true
	e.log.Debug("new incumbent", slog.Int("reward", r), slog.Int("expanded", e.stats.Expanded))
	e.opts.OnIncumbent(r)
}

// dominated reports whether a state with the same key and an equal or
// better reward was already expanded.
func (e *engine[S, K]) dominated(s S) bool {
	if !e.opts.Dedup {
		return false
	}
	prev, seen := e.expanded[e.p.Key(s)]

	return seen && prev >= e.p.Reward(s)
}

func (e *engine[S, K]) markExpanded(s S) {
	if !e.opts.Dedup {
		return
	}
	k := e.p.Key(s)
	r := e.p.Reward(s)
	if prev, seen := e.expanded[k]; !seen || r > prev {
		e.expanded[k] = r
	}
}
