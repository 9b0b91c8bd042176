package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ReadsValuesAndFillsDefaults(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: "9090"
helius:
  baseURL: "https://devnet.helius-rpc.com"
portfolio:
  dustThresholdUSD: 1.0
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://devnet.helius-rpc.com", cfg.Helius.BaseURL)
	assert.InDelta(t, 1.0, cfg.Portfolio.DustThresholdUSD, 1e-9)

	// Everything unset falls back to the stock values.
	assert.Equal(t, int64(10000), cfg.Helius.RequestTimeoutMillis)
	assert.InDelta(t, 0.005, cfg.Portfolio.OthersShare, 1e-9)
	assert.Equal(t, 5, cfg.Cache.TTLMinutes)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "server: [not a mapping")
	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://mainnet.helius-rpc.com", cfg.Helius.BaseURL)
	assert.InDelta(t, 0.5, cfg.Portfolio.DustThresholdUSD, 1e-9)
	assert.Equal(t, 10, cfg.Cache.CleanupIntervalMinutes)
}
