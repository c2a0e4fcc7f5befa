// SPDX-License-Identifier: MIT

package distance

// BFS computes shortest hop counts from each of sources to each of sources
// by running one breadth-first search per source over the whole graph.
// The returned matrix is ordered like sources.
//
// Every edge of g must have weight 1 (ErrWeightedGraph otherwise).
//
// Complexity: Time O(S·(V+E)), memory O(V) per search plus O(S²) output.
func BFS(g Graph, sources []string) (*Matrix, error) {
	all, err := sortedVertices(g)
	if err != nil {
		return nil, err
	}
	if !unitWeights(g) {
		return nil, ErrWeightedGraph
	}
	known := make(map[string]int, len(all))
	for i, id := range all {
		known[id] = i
	}
	if err = checkIDs(sources, known); err != nil {
		return nil, err
	}

	m := newMatrix(append([]string(nil), sources...))
	n := len(sources)
	var i, j int
	for i = 0; i < n; i++ {
		hops := bfsFrom(g, sources[i])
		for j = 0; j < n; j++ {
			if d, ok := hops[sources[j]]; ok {
				m.data[i*n+j] = d
			}
		}
	}

	return m, nil
}

// bfsFrom returns the hop count from source to every reachable vertex.
func bfsFrom(g Graph, source string) map[string]int {
	hops := map[string]int{source: 0}
	queue := []string{source}
	var u string
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, e := range g[u] {
			if _, seen := hops[e.To]; seen {
				continue
			}
			hops[e.To] = hops[u] + 1
			queue = append(queue, e.To)
		}
	}

	return hops
}
