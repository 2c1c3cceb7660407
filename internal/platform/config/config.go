// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Default values used when the corresponding environment variable is unset.
const (
	DefaultMarketBaseURL = "http://api.marketstack.com"
	DefaultSymbolCSVPath = "data/symbols.csv"
	DefaultUsageBackend  = "file"
	DefaultUsagePath     = "searchCounts.properties"
	DefaultFeedbackPath  = "feedback.txt"
	DefaultSQLitePath    = "stockbot.db"
	DefaultAddr          = ":8080"
	DefaultHTTPTimeout   = 10 * time.Second
)

// Config holds all startup configuration for the service.
// It is constructed once in main and passed by parameter into each
// component constructor; no component reads the environment directly.
type Config struct {
	MarketAPIKey  string        // marketstack access key (required)
	MarketBaseURL string        // base URL for the marketstack API
	SymbolCSVPath string        // local symbol dataset (symbol,company_name CSV)
	UsageBackend  string        // "file", "gorm" or "redis"
	UsagePath     string        // ledger file for the file backend
	FeedbackPath  string        // append-only feedback sink
	DatabaseURL   string        // postgres DSN; empty selects SQLite
	SQLitePath    string        // SQLite file for the gorm backend
	RedisHost     string        // Redis host for the redis backend
	RedisPort     string        // Redis port
	RedisPassword string        // Redis password
	Addr          string        // HTTP listen address
	HTTPTimeout   time.Duration // outbound request timeout
}

// Load reads configuration from the environment. Missing credentials are a
// startup error, not a runtime error: the caller is expected to abort.
func Load() (Config, error) {
	cfg := Config{
		MarketAPIKey:  os.Getenv("MARKET_API_KEY"),
		MarketBaseURL: getenv("MARKET_BASE_URL", DefaultMarketBaseURL),
		SymbolCSVPath: getenv("SYMBOL_CSV_PATH", DefaultSymbolCSVPath),
		UsageBackend:  getenv("USAGE_BACKEND", DefaultUsageBackend),
		UsagePath:     getenv("USAGE_FILE_PATH", DefaultUsagePath),
		FeedbackPath:  getenv("FEEDBACK_FILE_PATH", DefaultFeedbackPath),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getenv("SQLITE_PATH", DefaultSQLitePath),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Addr:          getenv("ADDR", DefaultAddr),
		HTTPTimeout:   DefaultHTTPTimeout,
	}

	if cfg.MarketAPIKey == "" {
		return Config{}, fmt.Errorf("MARKET_API_KEY is not set")
	}

	switch cfg.UsageBackend {
	case "file", "gorm", "redis":
	default:
		return Config{}, fmt.Errorf("unknown USAGE_BACKEND %q", cfg.UsageBackend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
