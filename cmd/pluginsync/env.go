package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig holds flag defaults taken from the environment.
type envConfig struct {
	Root     string `env:"PLUGINSYNC_ROOT" envDefault:"."`
	Config   string `env:"PLUGINSYNC_CONFIG" envDefault:"build.config.toml"`
	Strategy string `env:"PLUGINSYNC_STRATEGY" envDefault:"full"`
	LogLevel string `env:"PLUGINSYNC_LOG_LEVEL" envDefault:"info"`
}

func parseEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// defaultsFromEnv returns the environment defaults, falling back to the
// built-in ones when the environment cannot be parsed.
func defaultsFromEnv() envConfig {
	cfg, err := parseEnv()
	if err != nil {
		return envConfig{Root: ".", Config: "build.config.toml", Strategy: "full", LogLevel: "info"}
	}
	return cfg
}
