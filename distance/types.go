// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"math"
)

// Unreachable marks a pair of vertices with no connecting path.
const Unreachable = math.MaxInt

// Sentinel errors. Callers match them with errors.Is; builders wrap them
// with the offending vertex id.
var (
	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("distance: graph is empty")

	// ErrUnknownVertex is returned when an edge or a requested id refers to
	// a vertex that is not part of the graph.
	ErrUnknownVertex = errors.New("distance: unknown vertex")

	// ErrNegativeWeight is returned for an edge with weight < 0.
	ErrNegativeWeight = errors.New("distance: negative edge weight")

	// ErrWeightedGraph is returned by BFS when an edge weight is not 1.
	ErrWeightedGraph = errors.New("distance: BFS requires unit edge weights")

	// ErrDuplicateVertex is returned when a requested id list repeats an id.
	ErrDuplicateVertex = errors.New("distance: duplicate vertex")
)

// Edge is a directed connection to another vertex.
type Edge struct {
	To     string
	Weight int
}

// Graph maps a vertex id to its outgoing edges. Every vertex must appear
// as a key, even when it has no outgoing edges.
type Graph map[string][]Edge

// Unit builds a Graph from plain adjacency lists, every edge of weight 1.
func Unit(adj map[string][]string) Graph {
	g := make(Graph, len(adj))
	for id, nbrs := range adj {
		edges := make([]Edge, len(nbrs))
		for i, to := range nbrs {
			edges[i] = Edge{To: to, Weight: 1}
		}
		g[id] = edges
	}

	return g
}
