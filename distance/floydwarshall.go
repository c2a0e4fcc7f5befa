// SPDX-License-Identifier: MIT

package distance

// FloydWarshall computes all-pairs shortest paths over every vertex of g.
//
// Contract:
//   - every edge target is a vertex of g; weights are non-negative.
//   - parallel edges keep the cheapest weight; self-loops are ignored.
//
// Determinism: vertices are ordered by id and the loop order is fixed
// (k → i → j) with strict improvement only.
//
// Complexity: Time O(V³), memory O(V²).
func FloydWarshall(g Graph) (*Matrix, error) {
	ids, err := sortedVertices(g)
	if err != nil {
		return nil, err
	}
	m := newMatrix(ids)
	n := len(ids)

	// Seed direct edges.
	var i int
	for i = 0; i < n; i++ {
		for _, e := range g[ids[i]] {
			j := m.index[e.To]
			if i != j && e.Weight < m.data[i*n+j] {
				m.data[i*n+j] = e.Weight
			}
		}
	}

	floydWarshallInPlace(m.data, n)

	return m, nil
}

// floydWarshallInPlace relaxes a flat row-major n×n buffer in place.
// Unreachable entries are skipped so the sentinel never overflows.
func floydWarshallInPlace(data []int, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
