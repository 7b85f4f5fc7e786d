package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
exchange:
  base_url: https://ftx.us/api
  timeout: 3s
  subaccount: research
  debug: true
log:
  level: debug
  format: text
collect:
  markets: [BTC-PERP, "ETH/USD"]
  resolution: 1h
  limit: 264
  lookback: 24h
  poll_interval: 30s
metrics_addr: ":9102"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://ftx.us/api", cfg.Exchange.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Exchange.Timeout)
	assert.Equal(t, "research", cfg.Exchange.Subaccount)
	assert.True(t, cfg.Exchange.Debug)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"BTC-PERP", "ETH/USD"}, cfg.Collect.Markets)
	assert.Equal(t, time.Hour, cfg.Collect.Resolution)
	assert.Equal(t, 264, cfg.Collect.Limit)
	assert.Equal(t, 24*time.Hour, cfg.Collect.Lookback)
	assert.Equal(t, 30*time.Second, cfg.Collect.PollInterval)
	assert.Equal(t, ":9102", cfg.MetricsAddr)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `
collect:
  limit: 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Exchange, cfg.Exchange)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, def.Collect.Resolution, cfg.Collect.Resolution)
	assert.Equal(t, 10, cfg.Collect.Limit)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTempConfig(t, "collect: [oops"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTempConfig(t, `
collect:
  resolution: 1500ms
  limit: 0
  markets: [""]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution")
	assert.Contains(t, err.Error(), "limit")
	assert.Contains(t, err.Error(), "markets[0]")
}
