// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/horizon/release"
)

// Sentinel errors.
var (
	ErrInvalid     = errors.New("config: invalid value")
	ErrNoKinds     = errors.New("config: no resource kinds")
	ErrUnknownKind = errors.New("config: unknown resource kind")
	ErrNoSites     = errors.New("config: no sites")
)

// Config is the full set of run settings.
type Config struct {
	Release Release `yaml:"release"`
	Economy Economy `yaml:"economy"`
	Batch   Batch   `yaml:"batch"`
	Log     Log     `yaml:"log"`
}

// Release holds the release-network settings.
type Release struct {
	Horizon       int    `yaml:"horizon"`
	SetupOverhead int    `yaml:"setup_overhead"`
	Start         string `yaml:"start"`
}

// Economy holds the production-economy settings.
type Economy struct {
	Horizon     int  `yaml:"horizon"`
	ProducerCap bool `yaml:"producer_cap"`
}

// Batch holds the worker pool settings.
type Batch struct {
	Workers int `yaml:"workers"`
}

// Log holds the logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Release: Release{Horizon: 30, SetupOverhead: 4, Start: release.DefaultStart},
		Economy: Economy{Horizon: 24, ProducerCap: true},
		Log:     Log{Level: "info"},
	}
}

// Load reads a settings file. Keys missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes settings from raw YAML over Default and validates them.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	switch {
	case c.Release.Horizon < 0:
		return fmt.Errorf("%w: release.horizon=%d", ErrInvalid, c.Release.Horizon)
	case c.Release.SetupOverhead < 0 || c.Release.SetupOverhead > c.Release.Horizon:
		return fmt.Errorf("%w: release.setup_overhead=%d", ErrInvalid, c.Release.SetupOverhead)
	case c.Economy.Horizon < 0:
		return fmt.Errorf("%w: economy.horizon=%d", ErrInvalid, c.Economy.Horizon)
	case c.Batch.Workers < 0:
		return fmt.Errorf("%w: batch.workers=%d", ErrInvalid, c.Batch.Workers)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// DualHorizon is the horizon left to two agents after the setup overhead.
func (r Release) DualHorizon() int { return r.Horizon - r.SetupOverhead }

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level=%q", ErrInvalid, l.Level)
	}

	return lvl, nil
}
