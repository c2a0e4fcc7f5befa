// SPDX-License-Identifier: MIT

package release_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/release"
)

// triangleNetwork is AA plus three points of interest with rates 10, 5, 2,
// every pair of sites one step apart.
func triangleNetwork(t *testing.T) *release.Network {
	t.Helper()
	net, err := release.NewNetwork([]release.Site{
		{ID: "AA", Rate: 0, Neighbors: []string{"X", "Y", "Z"}},
		{ID: "X", Rate: 10, Neighbors: []string{"AA", "Y", "Z"}},
		{ID: "Y", Rate: 5, Neighbors: []string{"AA", "X", "Z"}},
		{ID: "Z", Rate: 2, Neighbors: []string{"AA", "X", "Y"}},
	}, "")
	require.NoError(t, err)

	return net
}

// caveNetwork is the ten-site cave commonly used to illustrate the valve
// release problem.
func caveNetwork(t *testing.T) *release.Network {
	t.Helper()
	net, err := release.NewNetwork([]release.Site{
		{ID: "AA", Rate: 0, Neighbors: []string{"DD", "II", "BB"}},
		{ID: "BB", Rate: 13, Neighbors: []string{"CC", "AA"}},
		{ID: "CC", Rate: 2, Neighbors: []string{"DD", "BB"}},
		{ID: "DD", Rate: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{ID: "EE", Rate: 3, Neighbors: []string{"FF", "DD"}},
		{ID: "FF", Rate: 0, Neighbors: []string{"EE", "GG"}},
		{ID: "GG", Rate: 0, Neighbors: []string{"FF", "HH"}},
		{ID: "HH", Rate: 22, Neighbors: []string{"GG"}},
		{ID: "II", Rate: 0, Neighbors: []string{"AA", "JJ"}},
		{ID: "JJ", Rate: 21, Neighbors: []string{"II"}},
	}, "AA")
	require.NoError(t, err)

	return net
}

// randomNetwork builds a connected-ish undirected network with at most
// four points of interest and a couple of zero-rate corridor sites.
func randomNetwork(t *testing.T, rng *rand.Rand) *release.Network {
	t.Helper()
	n := 2 + rng.Intn(5) // 2..6 sites
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("S%d", i)
	}
	nbrs := make(map[string][]string, n)
	link := func(a, b string) {
		nbrs[a] = append(nbrs[a], b)
		nbrs[b] = append(nbrs[b], a)
	}
	// Spanning chain in shuffled order, with an occasional gap.
	perm := rng.Perm(n)
	for i := 1; i < n; i++ {
		if rng.Intn(6) != 0 {
			link(ids[perm[i-1]], ids[perm[i]])
		}
	}
	// Extra chords.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(4) == 0 {
				link(ids[i], ids[j])
			}
		}
	}

	sites := make([]release.Site, n)
	points := 0
	for i, id := range ids {
		rate := 0
		if points < 4 && rng.Intn(3) != 0 {
			rate = 1 + rng.Intn(12)
			points++
		}
		sites[i] = release.Site{ID: id, Rate: rate, Neighbors: nbrs[id]}
	}
	net, err := release.NewNetwork(sites, ids[rng.Intn(n)])
	require.NoError(t, err)

	return net
}
