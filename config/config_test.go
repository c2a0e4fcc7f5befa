// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/config"
	"github.com/katalvlaran/horizon/economy"
	"github.com/katalvlaran/horizon/release"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 30, cfg.Release.Horizon)
	require.Equal(t, 26, cfg.Release.DualHorizon())
	require.Equal(t, "AA", cfg.Release.Start)
	require.Equal(t, 24, cfg.Economy.Horizon)
	require.True(t, cfg.Economy.ProducerCap)
	require.Zero(t, cfg.Batch.Workers)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	require.Equal(t, 26, cfg.Release.Horizon)
	require.Equal(t, 26, cfg.Release.DualHorizon())
	require.Equal(t, "AA", cfg.Release.Start)
	require.Equal(t, 24, cfg.Economy.Horizon)
	require.False(t, cfg.Economy.ProducerCap)
	require.Equal(t, 2, cfg.Batch.Workers)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative horizon":  "release: {horizon: -1, setup_overhead: 0}",
		"overhead too long": "release: {horizon: 3, setup_overhead: 4}",
		"economy horizon":   "economy: {horizon: -2}",
		"workers":           "batch: {workers: -1}",
		"level":             "log: {level: loud}",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(raw))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("release: [not, a, map]"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadNetwork(t *testing.T) {
	net, err := config.LoadNetwork(filepath.Join("testdata", "cave.yaml"), "")
	require.NoError(t, err)
	require.Equal(t, 10, net.Len())
	require.Equal(t, "AA", net.Start())

	plan, err := release.Solve(net, 30)
	require.NoError(t, err)
	require.Equal(t, 1651, plan.Reward)
}

func TestParseNetwork_Errors(t *testing.T) {
	_, err := config.ParseNetwork([]byte("sites: []"), "")
	require.ErrorIs(t, err, config.ErrNoSites)

	_, err = config.ParseNetwork([]byte("sites: [{id: A, rate: 1, neighbors: [B]}]"), "A")
	require.ErrorIs(t, err, release.ErrUnknownSite)

	// The file has no start; the caller's start is used and must exist.
	_, err = config.ParseNetwork([]byte("sites: [{id: A, rate: 1}]"), "Q")
	require.ErrorIs(t, err, release.ErrUnknownSite)

	net, err := config.ParseNetwork([]byte("sites: [{id: A, rate: 1}]"), "A")
	require.NoError(t, err)
	require.Equal(t, "A", net.Start())
}

func TestLoadBlueprints(t *testing.T) {
	bps, err := config.LoadBlueprints(filepath.Join("testdata", "blueprints.yaml"))
	require.NoError(t, err)
	require.Len(t, bps, 2)

	require.Equal(t, economy.Blueprint{
		ID:    1,
		Kinds: 4,
		Costs: [economy.MaxKinds]economy.Vector{
			{4, 0, 0, 0},
			{2, 0, 0, 0},
			{3, 14, 0, 0},
			{2, 0, 7, 0},
		},
	}, bps[0])
	require.Equal(t, 2, bps[1].ID)
	require.Equal(t, economy.Vector{3, 0, 12, 0}, bps[1].Costs[3])
}

func TestParseBlueprints_Errors(t *testing.T) {
	_, err := config.ParseBlueprints([]byte("blueprints: []"))
	require.ErrorIs(t, err, config.ErrNoKinds)

	_, err = config.ParseBlueprints([]byte("kinds: [a, b, c, d, e]"))
	require.ErrorIs(t, err, economy.ErrKinds)

	_, err = config.ParseBlueprints([]byte("kinds: [a, a]"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.ParseBlueprints([]byte(`
kinds: [raw, gem]
blueprints:
  - costs: {gem: {sand: 1}}
`))
	require.ErrorIs(t, err, config.ErrUnknownKind)

	_, err = config.ParseBlueprints([]byte(`
kinds: [raw, gem]
blueprints:
  - costs: {gem: {gem: 1}}
`))
	require.ErrorIs(t, err, economy.ErrBadCost)

	bps, err := config.ParseBlueprints([]byte(`
kinds: [raw, gem]
blueprints:
  - costs: {raw: {raw: 2}, gem: {raw: 3}}
    initial: {raw: 2}
`))
	require.NoError(t, err)
	require.Equal(t, 1, bps[0].ID)
	require.Equal(t, economy.Vector{2, 0}, bps[0].Initial)
}
