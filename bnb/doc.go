// SPDX-License-Identifier: MIT

// Package bnb implements best-first Branch-and-Bound over a discrete time horizon.
//
// Solve maximizes a scalar reward over the states of a Problem. The domain
// supplies the root state, a transition function (Expand), an optimistic
// bound and a deduplication key; the engine owns everything else:
//
//  1. Frontier: a max-heap ordered by bound (insertion order among equal
//     bounds), so the most promising partial state is always expanded next.
//  2. Pruning: a popped state whose bound does not exceed the incumbent is
//     discarded, and so is every child whose bound does not exceed it.
//  3. Terminal states (no children) are candidate answers; only a strictly
//     greater reward replaces the incumbent, so the first optimum found
//     wins ties.
//  4. Deduplication: the expanded-set remembers, per key, the best reward
//     already expanded. A state whose key was expanded with an equal or
//     better reward is dominated and skipped.
//
// Soundness requires Bound(s) ≥ the best total reachable from s. With an
// admissible bound the incumbent returned when the frontier empties is the
// optimum. Exhaustive runs the same Problem without any pruning and is the
// reference used by the property tests.
//
// The engine is single-threaded and keeps no global state: independent
// Solve calls may run in parallel (see package batch).
//
// Complexity:
//   - Worst case exponential in the horizon; practical speed comes from the
//     bound.
//   - Per expansion: O(c·log F) for c children and frontier size F.
//   - Memory: O(F + D) for the frontier and the expanded-set.
package bnb
