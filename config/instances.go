// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/horizon/economy"
	"github.com/katalvlaran/horizon/release"
)

// networkFile is the YAML shape of a release network.
type networkFile struct {
	Start string         `yaml:"start"`
	Sites []release.Site `yaml:"sites"`
}

// blueprintFile is the YAML shape of a blueprint list. Costs and initial
// producers are keyed by kind name; Kinds fixes the dependency order and
// its last entry is the terminal kind.
type blueprintFile struct {
	Kinds      []string        `yaml:"kinds"`
	Blueprints []blueprintYAML `yaml:"blueprints"`
}

type blueprintYAML struct {
	ID      int                       `yaml:"id"`
	Costs   map[string]map[string]int `yaml:"costs"`
	Initial map[string]int            `yaml:"initial"`
}

// LoadNetwork reads a network file. start is used when the file has none.
func LoadNetwork(path, start string) (*release.Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	net, err := ParseNetwork(raw, start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return net, nil
}

// ParseNetwork decodes and validates a network:
//
//	start: AA
//	sites:
//	  - {id: AA, rate: 0, neighbors: [BB]}
//	  - {id: BB, rate: 13, neighbors: [AA]}
func ParseNetwork(raw []byte, start string) (*release.Network, error) {
	var f networkFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if len(f.Sites) == 0 {
		return nil, ErrNoSites
	}
	if f.Start != "" {
		start = f.Start
	}

	return release.NewNetwork(f.Sites, start)
}

// LoadBlueprints reads a blueprint file.
func LoadBlueprints(path string) ([]economy.Blueprint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	bps, err := ParseBlueprints(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bps, nil
}

// ParseBlueprints decodes and validates blueprints:
//
//	kinds: [ore, clay, obsidian, geode]
//	blueprints:
//	  - id: 1
//	    costs:
//	      ore: {ore: 4}
//	      geode: {ore: 2, obsidian: 7}
//
// Blueprints without an id are numbered from 1 by position.
func ParseBlueprints(raw []byte) ([]economy.Blueprint, error) {
	var f blueprintFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if len(f.Kinds) == 0 {
		return nil, ErrNoKinds
	}
	if len(f.Kinds) > economy.MaxKinds {
		return nil, fmt.Errorf("%w: %d kinds", economy.ErrKinds, len(f.Kinds))
	}
	index := make(map[string]int, len(f.Kinds))
	for i, k := range f.Kinds {
		if _, dup := index[k]; dup {
			return nil, fmt.Errorf("%w: duplicate kind %q", ErrInvalid, k)
		}
		index[k] = i
	}
	vector := func(m map[string]int) (economy.Vector, error) {
		var v economy.Vector
		for name, n := range m {
			i, ok := index[name]
			if !ok {
				return v, fmt.Errorf("%w: %q", ErrUnknownKind, name)
			}
			v[i] = n
		}
		return v, nil
	}

	out := make([]economy.Blueprint, 0, len(f.Blueprints))
	for pos, b := range f.Blueprints {
		bp := economy.Blueprint{ID: b.ID, Kinds: len(f.Kinds)}
		if bp.ID == 0 {
			bp.ID = pos + 1
		}
		for producer, cost := range b.Costs {
			k, ok := index[producer]
			if !ok {
				return nil, fmt.Errorf("blueprint %d: %w: %q", bp.ID, ErrUnknownKind, producer)
			}
			v, err := vector(cost)
			if err != nil {
				return nil, fmt.Errorf("blueprint %d: %w", bp.ID, err)
			}
			bp.Costs[k] = v
		}
		v, err := vector(b.Initial)
		if err != nil {
			return nil, fmt.Errorf("blueprint %d: %w", bp.ID, err)
		}
		bp.Initial = v
		if err := bp.Validate(); err != nil {
			return nil, fmt.Errorf("blueprint %d: %w", bp.ID, err)
		}
		out = append(out, bp)
	}

	return out, nil
}
