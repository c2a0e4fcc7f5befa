// SPDX-License-Identifier: MIT

package distance

// Build returns the distance matrix between the vertices in keep, in that
// order, choosing BFS when every edge has unit weight and FloydWarshall
// (followed by Restrict) otherwise. Both paths yield identical matrices.
func Build(g Graph, keep []string) (*Matrix, error) {
	if _, err := sortedVertices(g); err != nil {
		return nil, err
	}
	if unitWeights(g) {
		return BFS(g, keep)
	}
	full, err := FloydWarshall(g)
	if err != nil {
		return nil, err
	}

	return full.Restrict(keep)
}
