// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"slices"
)

// sortedVertices validates g and returns its vertex ids in ascending order.
// Ordering is fixed so that matrices built from equal graphs are identical.
func sortedVertices(g Graph) ([]string, error) {
	if len(g) == 0 {
		return nil, ErrEmptyGraph
	}
	ids := make([]string, 0, len(g))
	for id, edges := range g {
		ids = append(ids, id)
		for _, e := range edges {
			if _, ok := g[e.To]; !ok {
				return nil, fmt.Errorf("%w: %q (edge from %q)", ErrUnknownVertex, e.To, id)
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, id, e.To, e.Weight)
			}
		}
	}
	slices.Sort(ids)

	return ids, nil
}

// unitWeights reports whether every edge of g has weight 1.
func unitWeights(g Graph) bool {
	for _, edges := range g {
		for _, e := range edges {
			if e.Weight != 1 {
				return false
			}
		}
	}

	return true
}
