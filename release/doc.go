// SPDX-License-Identifier: MIT

// Package release solves release networks: an agent walks a graph of sites
// and activates the ones that carry a reward rate. Each activation costs one
// time step and keeps paying rate × (remaining time) until the horizon.
//
// The package plugs two policies into package bnb:
//
//   - Problem: one agent. Actions are "travel to an unactivated point of
//     interest and activate it"; when none fits the remaining time, the
//     only action is waiting until the horizon.
//   - DualProblem: two agents sharing the horizon and the activated set.
//     Every joint step is the cross product of both agents' actions without
//     double claims. An agent may always stop and idle for the rest of the
//     horizon, so two agents never do worse than one.
//
// Travel costs come from a distance.Matrix restricted to the points of
// interest and the start site; unreachable sites are never offered.
//
// Bound (admissible): rank the unactivated points of interest by rate and
// activate them optimistically at t+2, t+4, … (t+1, t+3, … when the agent
// stands on an unactivated point of interest), ignoring real distances.
// The dual bound is the sum of both agents' optimistic extras.
//
// Limits: at most 64 points of interest (the activated set is a bitmask).
package release
