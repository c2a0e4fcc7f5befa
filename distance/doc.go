// SPDX-License-Identifier: MIT

// Package distance is the distance oracle of the optimizer: it precomputes
// minimal traversal costs between the sites a search may target.
//
// Two interchangeable builders produce the same Matrix:
//
//   - FloydWarshall: all-pairs relaxation over every vertex of the graph,
//     valid for any non-negative edge weights.
//     Time O(V³), memory O(V²).
//   - BFS: one breadth-first search per requested source; only valid when
//     every edge has unit weight.
//     Time O(S·(V+E)), memory O(S·V).
//
// Build picks BFS for unit-weight graphs and FloydWarshall otherwise, then
// restricts the result to the requested points of interest. Pairs without
// a path hold the Unreachable sentinel; At reports them with ok=false.
//
// A Matrix is immutable after construction and safe for concurrent reads,
// so one oracle result may be shared by every state of a search run and by
// parallel runs over the same graph.
package distance
