// SPDX-License-Identifier: MIT

// Package metrics exports branch-and-bound run statistics as Prometheus
// collectors.
//
// A Recorder owns one counter per engine event (expanded, generated,
// pruned, deduplicated, terminal states), a histogram of wall-clock solve
// time and a histogram of peak frontier size, all labeled by domain
// ("release", "release_dual", "economy"). Collectors are registered on the
// caller's prometheus.Registerer so tests can use an isolated registry.
//
// A nil *Recorder is valid and records nothing.
package metrics
