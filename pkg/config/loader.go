package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Load resolves the full configuration: defaults, then the optional
// YAML overlay at path (empty path or a missing file is fine), then
// environment variables. The returned Config has been validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := applyOverlay(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyOverlay merges a YAML overlay file over cfg. Values present in
// the file win over defaults; absent values keep their defaults.
func applyOverlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No config overlay file, using defaults", "path", path)
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	expanded := ExpandEnv(data)

	var overlay Config
	if err := yaml.Unmarshal(expanded, &overlay); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := mergo.Merge(cfg, overlay, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging config file %s: %w", path, err)
	}

	slog.Info("Applied config overlay", "path", path)
	return nil
}
