// Package marketstack provides a client for the marketstack market data API.
package marketstack

import "time"

// Config holds configuration for the marketstack API client.
// It is constructed from the process configuration in main; the package
// never reads the environment itself.
type Config struct {
	AccessKey string        // access key for authentication
	BaseURL   string        // base URL for the API (e.g., "http://api.marketstack.com")
	Timeout   time.Duration // HTTP request timeout
}
