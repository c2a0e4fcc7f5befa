// SPDX-License-Identifier: MIT

package release

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/horizon/distance"
)

// DefaultStart is the start site used when none is given.
const DefaultStart = "AA"

// MaxPoints is the largest number of points of interest a network may have.
const MaxPoints = 64

// Sentinel errors for malformed networks and parameters.
var (
	ErrNilNetwork      = errors.New("release: network is nil")
	ErrEmptyNetwork    = errors.New("release: network has no sites")
	ErrDuplicateSite   = errors.New("release: duplicate site")
	ErrUnknownSite     = errors.New("release: unknown site")
	ErrNegativeRate    = errors.New("release: negative reward rate")
	ErrTooManySites    = errors.New("release: too many points of interest")
	ErrNegativeHorizon = errors.New("release: negative horizon")
)

// Site is one node of a release network.
type Site struct {
	ID        string   `yaml:"id"`
	Rate      int      `yaml:"rate"`
	Neighbors []string `yaml:"neighbors"`
}

// Network is a validated, immutable set of sites plus the start site.
type Network struct {
	start string
	sites map[string]Site
}

// NewNetwork validates sites and returns a Network starting at start
// (DefaultStart when empty). Neighbor lists are copied.
func NewNetwork(sites []Site, start string) (*Network, error) {
	if len(sites) == 0 {
		return nil, ErrEmptyNetwork
	}
	if start == "" {
		start = DefaultStart
	}
	n := &Network{start: start, sites: make(map[string]Site, len(sites))}
	var points int
	for _, s := range sites {
		if _, dup := n.sites[s.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSite, s.ID)
		}
		if s.Rate < 0 {
			return nil, fmt.Errorf("%w: %q rate=%d", ErrNegativeRate, s.ID, s.Rate)
		}
		if s.Rate > 0 {
			points++
		}
		s.Neighbors = slices.Clone(s.Neighbors)
		n.sites[s.ID] = s
	}
	for _, s := range n.sites {
		for _, nb := range s.Neighbors {
			if _, ok := n.sites[nb]; !ok {
				return nil, fmt.Errorf("%w: %q (neighbor of %q)", ErrUnknownSite, nb, s.ID)
			}
		}
	}
	if _, ok := n.sites[start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownSite, start)
	}
	if points > MaxPoints {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManySites, points, MaxPoints)
	}

	return n, nil
}

// Start returns the start site id.
func (n *Network) Start() string { return n.start }

// Site returns the site with the given id.
func (n *Network) Site(id string) (Site, bool) {
	s, ok := n.sites[id]

	return s, ok
}

// Len returns the number of sites.
func (n *Network) Len() int { return len(n.sites) }

// PointsOfInterest returns the ids of sites with a positive rate, by rate
// descending and then by id.
func (n *Network) PointsOfInterest() []string {
	var ids []string
	for id, s := range n.sites {
		if s.Rate > 0 {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(n.sites[b].Rate, n.sites[a].Rate); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return ids
}

// Graph returns the unit-weight adjacency of the network.
func (n *Network) Graph() distance.Graph {
	adj := make(map[string][]string, len(n.sites))
	for id, s := range n.sites {
		adj[id] = s.Neighbors
	}

	return distance.Unit(adj)
}
