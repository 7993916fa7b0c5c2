// Package config loads simulation settings from an optional YAML file
// with environment-variable overrides on top.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// SimConfig controls a simulation run. Precedence, lowest to highest:
// defaults, config file, MONTYSIM_* environment variables, CLI flags.
type SimConfig struct {
	// Trials run when no positional count is given.
	Trials int `yaml:"trials" env:"MONTYSIM_TRIALS"`
	// Seed for the random source; 0 means time-based.
	Seed int64 `yaml:"seed" env:"MONTYSIM_SEED"`
	// Host policy: "correct" or "naive".
	Host string `yaml:"host" env:"MONTYSIM_HOST"`
	// Trace toggles the per-trial door lines on stdout.
	Trace bool `yaml:"trace" env:"MONTYSIM_TRACE"`
}

func Default() SimConfig {
	return SimConfig{Trials: 1, Host: "correct", Trace: true}
}

// Load reads path when it exists and applies env overrides. A missing
// file is not an error; the defaults stand.
func Load(path string) (SimConfig, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Default(), fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Default(), fmt.Errorf("read %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
