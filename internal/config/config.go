package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dgud/emprng/config"
	"github.com/dgud/emprng/internal/registry"
)

func LoadConfig(path string) (*config.Generator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *config.Generator
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &config.Generator{}
	}
	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Validate(cfg *config.Generator) error {
	if cfg.Algorithm == "" {
		return nil
	}
	if _, err := registry.Resolve(cfg.Algorithm); err != nil {
		return fmt.Errorf("generator config (known: %s): %w",
			strings.Join(registry.IDs(), ", "), err)
	}
	return nil
}
