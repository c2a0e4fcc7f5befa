// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"slices"
)

// Matrix is a square table of minimal traversal costs between an ordered
// set of vertex ids, stored row-major in a flat buffer.
type Matrix struct {
	ids   []string
	index map[string]int
	data  []int
}

// newMatrix allocates an n×n matrix with 0 on the diagonal and Unreachable
// elsewhere.
func newMatrix(ids []string) *Matrix {
	n := len(ids)
	m := &Matrix{
		ids:   ids,
		index: make(map[string]int, n),
		data:  make([]int, n*n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		m.index[ids[i]] = i
		for j = 0; j < n; j++ {
			if i != j {
				m.data[i*n+j] = Unreachable
			}
		}
	}

	return m
}

// Len returns the matrix order.
func (m *Matrix) Len() int { return len(m.ids) }

// IDs returns a copy of the vertex ids in row order.
func (m *Matrix) IDs() []string { return slices.Clone(m.ids) }

// Index returns the row of id.
func (m *Matrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// At returns the cost from row i to column j. ok is false when the pair is
// unreachable or an index is out of range.
func (m *Matrix) At(i, j int) (int, bool) {
	n := len(m.ids)
	if i < 0 || j < 0 || i >= n || j >= n {
		return Unreachable, false
	}
	d := m.data[i*n+j]

	return d, d != Unreachable
}

// Between is At addressed by vertex id.
func (m *Matrix) Between(from, to string) (int, bool) {
	i, ok := m.index[from]
	if !ok {
		return Unreachable, false
	}
	j, ok := m.index[to]
	if !ok {
		return Unreachable, false
	}

	return m.At(i, j)
}

// Restrict returns a new matrix over ids only, in the given order. The
// costs are those of m, so paths through dropped vertices are preserved.
func (m *Matrix) Restrict(ids []string) (*Matrix, error) {
	if err := checkIDs(ids, m.index); err != nil {
		return nil, err
	}
	out := newMatrix(slices.Clone(ids))
	n, src := len(ids), len(m.ids)
	var i, j int
	for i = 0; i < n; i++ {
		si := m.index[ids[i]]
		for j = 0; j < n; j++ {
			out.data[i*n+j] = m.data[si*src+m.index[ids[j]]]
		}
	}

	return out, nil
}

// Equal reports whether both matrices hold the same ids in the same order
// with identical costs.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return slices.Equal(m.ids, o.ids) && slices.Equal(m.data, o.data)
}

// checkIDs rejects unknown and repeated ids.
func checkIDs(ids []string, known map[string]int) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
