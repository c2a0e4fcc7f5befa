// SPDX-License-Identifier: MIT

// Package horizon is a time-budgeted branch-and-bound optimizer: it
// maximizes a cumulative reward over a fixed number of discrete steps by
// best-first search ordered by an optimistic bound.
//
// Packages:
//
//	distance/  all-pairs traversal costs (Floyd–Warshall, per-source BFS)
//	bnb/       generic engine: frontier, incumbent, pruning, expanded-set
//	release/   release networks: one agent or two agents sharing the budget
//	economy/   production economies: spend resources on compounding producers
//	batch/     parallel solving of independent instances plus aggregation
//	config/    YAML settings and instance files
//	metrics/   Prometheus collectors fed from engine statistics
//	cmd/horizon  command-line front end
//
// A domain plugs into the engine by implementing bnb.Problem: Root,
// Expand, Bound, Reward and Key. Bound must never underestimate the best
// reward reachable from a state; the engine then returns the exact optimum.
package horizon
