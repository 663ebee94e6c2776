package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Rahulvijayan123/workout/internal/scoring"
)

// Config holds the scorer settings.
type Config struct {
	MainLifts []string        `yaml:"main_lifts"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
}

// ArtifactsConfig controls JSON run artifact output. An empty dir disables
// artifacts.
type ArtifactsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the compiled-in configuration: the standard main-lift set
// and no artifact output.
func Default() *Config {
	return &Config{
		MainLifts: append([]string(nil), scoring.MainLifts...),
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged; a path that cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if len(cfg.MainLifts) == 0 {
		cfg.MainLifts = append([]string(nil), scoring.MainLifts...)
	}

	return cfg, nil
}
