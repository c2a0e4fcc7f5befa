// SPDX-License-Identifier: MIT

package distance_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/distance"
)

// ------------------------------------------------------------------------
// Fixtures.
// ------------------------------------------------------------------------

// lineGraph builds A-B-C-D with unit weights in both directions.
func lineGraph() distance.Graph {
	return distance.Unit(map[string][]string{
		"A": {"B"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"C"},
	})
}

// randomUnitGraph builds an undirected unit graph with n vertices and
// roughly density·n² edges. Some vertices may end up isolated.
func randomUnitGraph(rng *rand.Rand, n int, density float64) distance.Graph {
	adj := make(map[string][]string, n)
	var i, j int
	for i = 0; i < n; i++ {
		adj[vid(i)] = nil
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() < density {
				adj[vid(i)] = append(adj[vid(i)], vid(j))
				adj[vid(j)] = append(adj[vid(j)], vid(i))
			}
		}
	}

	return distance.Unit(adj)
}

func vid(i int) string { return fmt.Sprintf("V%02d", i) }

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestBuild_Errors(t *testing.T) {
	_, err := distance.Build(distance.Graph{}, nil)
	require.ErrorIs(t, err, distance.ErrEmptyGraph)

	_, err = distance.FloydWarshall(distance.Unit(map[string][]string{"A": {"Z"}}))
	require.ErrorIs(t, err, distance.ErrUnknownVertex)

	_, err = distance.Build(distance.Graph{"A": {{To: "A", Weight: -1}}}, []string{"A"})
	require.ErrorIs(t, err, distance.ErrNegativeWeight)

	_, err = distance.Build(lineGraph(), []string{"A", "Q"})
	require.ErrorIs(t, err, distance.ErrUnknownVertex)

	_, err = distance.Build(lineGraph(), []string{"A", "A"})
	require.ErrorIs(t, err, distance.ErrDuplicateVertex)
}

func TestBFS_RejectsWeightedGraph(t *testing.T) {
	g := distance.Graph{
		"A": {{To: "B", Weight: 2}},
		"B": nil,
	}
	_, err := distance.BFS(g, []string{"A", "B"})
	require.ErrorIs(t, err, distance.ErrWeightedGraph)
}

// ------------------------------------------------------------------------
// 2. Correctness on small graphs.
// ------------------------------------------------------------------------

func TestFloydWarshall_Line(t *testing.T) {
	m, err := distance.FloydWarshall(lineGraph())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, m.IDs())

	want := [][]int{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}
	for i := range want {
		for j := range want[i] {
			got, ok := m.At(i, j)
			require.True(t, ok)
			require.Equal(t, want[i][j], got, "d(%d,%d)", i, j)
		}
	}
}

func TestFloydWarshall_WeightedShortcut(t *testing.T) {
	// Direct A→C costs 10, but A→B→C costs 3.
	g := distance.Graph{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 10}},
		"B": {{To: "C", Weight: 2}},
		"C": nil,
	}
	m, err := distance.Build(g, []string{"C", "A"})
	require.NoError(t, err)

	d, ok := m.Between("A", "C")
	require.True(t, ok)
	require.Equal(t, 3, d)

	// Directed: no way back.
	_, ok = m.Between("C", "A")
	require.False(t, ok)
}

func TestBuild_Unreachable(t *testing.T) {
	g := distance.Unit(map[string][]string{
		"A": {"B"},
		"B": {"A"},
		"X": nil,
	})
	m, err := distance.Build(g, []string{"A", "X"})
	require.NoError(t, err)

	d, ok := m.Between("A", "X")
	require.False(t, ok)
	require.Equal(t, distance.Unreachable, d)

	_, ok = m.At(0, 5)
	require.False(t, ok, "out of range index must report ok=false")
}

func TestRestrict_KeepsPathsThroughDroppedVertices(t *testing.T) {
	full, err := distance.FloydWarshall(lineGraph())
	require.NoError(t, err)

	sub, err := full.Restrict([]string{"D", "A"})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())

	d, ok := sub.At(0, 1)
	require.True(t, ok)
	require.Equal(t, 3, d)
}

// ------------------------------------------------------------------------
// 3. Properties on random graphs.
// ------------------------------------------------------------------------

func TestOracle_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		n := 3 + rng.Intn(9)
		g := randomUnitGraph(rng, n, 0.3)

		keep := make([]string, 0, n)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				keep = append(keep, vid(i))
			}
		}

		full, err := distance.FloydWarshall(g)
		require.NoError(t, err)
		viaFW, err := full.Restrict(keep)
		require.NoError(t, err)
		viaBFS, err := distance.BFS(g, keep)
		require.NoError(t, err)
		require.True(t, viaFW.Equal(viaBFS), "trial %d: FW and BFS disagree", trial)

		// Idempotent.
		again, err := distance.FloydWarshall(g)
		require.NoError(t, err)
		require.True(t, full.Equal(again), "trial %d: rebuild differs", trial)

		// Triangle inequality over every reachable triple.
		requireTriangle(t, full)
	}
}

func requireTriangle(t *testing.T, m *distance.Matrix) {
	t.Helper()
	n := m.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dij, okij := m.At(i, j)
			for k := 0; k < n; k++ {
				dik, okik := m.At(i, k)
				dkj, okkj := m.At(k, j)
				if !okik || !okkj {
					continue
				}
				require.True(t, okij, "i→k→j reachable but i→j is not (%d,%d,%d)", i, k, j)
				require.LessOrEqual(t, dij, dik+dkj)
			}
		}
	}
}

func TestMatrix_IDsIsACopy(t *testing.T) {
	m, err := distance.FloydWarshall(lineGraph())
	require.NoError(t, err)
	ids := m.IDs()
	ids[0] = "mutated"
	require.True(t, slices.Equal(m.IDs(), []string{"A", "B", "C", "D"}))
}
