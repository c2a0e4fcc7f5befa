// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/horizon/batch"
	"github.com/katalvlaran/horizon/config"
	"github.com/katalvlaran/horizon/metrics"
)

// globals are the persistent flags shared by every subcommand.
type globals struct {
	configPath  string
	logLevel    string
	workers     int
	metricsPath string
}

// session is what a subcommand needs once flags and config are resolved.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	batch    []batch.Option
	metrics  string
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "horizon",
		Short:         "Time-budgeted branch-and-bound optimizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "settings file (YAML)")
	pf.StringVar(&g.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	pf.IntVarP(&g.workers, "workers", "w", -1, "override batch.workers (0 = GOMAXPROCS)")
	pf.StringVar(&g.metricsPath, "metrics-out", "", "write Prometheus text metrics to this file")

	root.AddCommand(newReleaseCmd(g), newEconomyCmd(g))

	return root
}

// setup loads settings, applies flag overrides and builds the logger,
// metrics registry and batch options.
func (g *globals) setup(cmd *cobra.Command) (*session, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.workers >= 0 {
		cfg.Batch.Workers = g.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		metrics:  g.metricsPath,
		batch: []batch.Option{
			batch.WithWorkers(cfg.Batch.Workers),
			batch.WithLogger(logger),
			batch.WithRecorder(rec),
		},
	}, nil
}

// flush writes collected metrics when --metrics-out was given.
func (rt *session) flush() error {
	if rt.metrics == "" {
		return nil
	}

	return prometheus.WriteToTextfile(rt.metrics, rt.registry)
}
