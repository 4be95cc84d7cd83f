package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "clearpay.yaml"

// Config represents the top-level clearpay.yaml configuration. It holds
// host-level settings only; matching weights and the statement timezone
// offset are fixed engine behavior and deliberately not configurable.
type Config struct {
	PaymentsFile string       `yaml:"payments_file"`
	RunLog       RunLogConfig `yaml:"run_log"`
}

// RunLogConfig controls the append-only run history.
type RunLogConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads a clearpay.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		PaymentsFile: "payments.yaml",
		RunLog: RunLogConfig{
			Enabled: true,
		},
	}
}
