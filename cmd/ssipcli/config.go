package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds ssipcli's defaults, optionally overridden by a YAML file
// passed via --config (-c) and then by explicit flags.
type config struct {
	SocketPath  string `yaml:"socket_path"`
	Address     string `yaml:"address"`
	Network     string `yaml:"network"` // "unix" or "tcp"
	User        string `yaml:"user"`
	App         string `yaml:"app"`
	MetricsAddr string `yaml:"metrics_addr"`
}

func defaultConfig() config {
	return config{
		Network:     "unix",
		User:        "ssipcli",
		App:         "ssipcli",
		MetricsAddr: ":9121",
	}
}

func loadConfigFile(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
