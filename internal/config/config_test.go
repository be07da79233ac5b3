package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dgud/emprng/internal/registry"
)

func writeCfg(t *testing.T, yml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	return path
}

// TestLoadConfig_Full parses algorithm and seed triple.
func TestLoadConfig_Full(t *testing.T) {
	path := writeCfg(t, `
algorithm: sfmt19937
seed:
  a1: 7
  a2: 11
  a3: 13
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "sfmt19937", cfg.Algorithm)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, int64(7), cfg.Seed.A1)
	require.Equal(t, int64(11), cfg.Seed.A2)
	require.Equal(t, int64(13), cfg.Seed.A3)
}

// TestLoadConfig_Empty yields a zero config (library defaults apply).
func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(writeCfg(t, ""))
	require.NoError(t, err)
	require.Empty(t, cfg.Algorithm)
	require.Nil(t, cfg.Seed)
}

// TestLoadConfig_UnknownAlgorithm fails validation.
func TestLoadConfig_UnknownAlgorithm(t *testing.T) {
	_, err := LoadConfig(writeCfg(t, "algorithm: mersenne"))
	require.ErrorIs(t, err, registry.ErrUnknownAlgorithm)
}

// TestLoadConfig_MissingFile fails on stat.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

// TestLoadConfig_BadYaml fails on unmarshal.
func TestLoadConfig_BadYaml(t *testing.T) {
	_, err := LoadConfig(writeCfg(t, "algorithm: [unterminated"))
	require.Error(t, err)
}
