// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/batch"
)

const twoKinds = `
kinds: [raw, gem]
blueprints:
  - id: 1
    costs: {raw: {raw: 2}, gem: {raw: 3}}
  - id: 2
    costs: {raw: {raw: 2}, gem: {raw: 3}}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRelease(t *testing.T) {
	cave := filepath.Join("..", "..", "config", "testdata", "cave.yaml")
	out, _, err := execute(t, "release", "--horizon", "30", cave, cave)
	require.NoError(t, err)
	require.Contains(t, out, cave+": 1651\n")
	require.Contains(t, out, "total: 3302\n")
}

func TestEconomy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoKinds), 0o600))
	metricsPath := filepath.Join(dir, "metrics.prom")

	out, logs, err := execute(t, "economy", "--horizon", "10", "--log-level", "debug",
		"--metrics-out", metricsPath, path)
	require.NoError(t, err)
	require.Equal(t, "blueprint 1: 10\nblueprint 2: 10\nquality: 30\n", out)
	require.Contains(t, logs, "batch finished")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), `horizon_search_solves_total{domain="economy",outcome="solved"} 2`)

	out, _, err = execute(t, "economy", "--horizon", "10", "--first", "1", "--aggregate", "product", path)
	require.NoError(t, err)
	require.Equal(t, "blueprint 1: 10\nproduct: 10\n", out)
}

func TestEconomy_UnknownAggregate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoKinds), 0o600))

	_, _, err := execute(t, "economy", "--aggregate", "median", path)
	require.ErrorIs(t, err, batch.ErrUnknownAggregate)
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: loud}"), 0o600))

	_, _, err := execute(t, "--config", path, "release", "x.yaml")
	require.Error(t, err)
}
