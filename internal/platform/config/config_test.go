package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingAPIKeyIsFatal(t *testing.T) {
	// Not parallel: modifies environment variables
	t.Setenv("MARKET_API_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MARKET_API_KEY")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MARKET_API_KEY", "test-key")
	t.Setenv("MARKET_BASE_URL", "")
	t.Setenv("SYMBOL_CSV_PATH", "")
	t.Setenv("USAGE_BACKEND", "")
	t.Setenv("ADDR", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.MarketAPIKey)
	assert.Equal(t, DefaultMarketBaseURL, cfg.MarketBaseURL)
	assert.Equal(t, DefaultSymbolCSVPath, cfg.SymbolCSVPath)
	assert.Equal(t, "file", cfg.UsageBackend)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MARKET_API_KEY", "test-key")
	t.Setenv("MARKET_BASE_URL", "http://localhost:9999")
	t.Setenv("USAGE_BACKEND", "redis")
	t.Setenv("SYMBOL_CSV_PATH", "/tmp/data.csv")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.MarketBaseURL)
	assert.Equal(t, "redis", cfg.UsageBackend)
	assert.Equal(t, "/tmp/data.csv", cfg.SymbolCSVPath)
}

func TestLoad_UnknownUsageBackend(t *testing.T) {
	t.Setenv("MARKET_API_KEY", "test-key")
	t.Setenv("USAGE_BACKEND", "dynamodb")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "USAGE_BACKEND")
}
