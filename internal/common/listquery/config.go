// Package listquery parses the limit/offset windowing parameters shared by
// list endpoints.
package listquery

import "newsdesk/pkg/config"

// Config holds list windowing configuration settings.
type Config struct {
	MaxLimit int // Maximum allowed items per request
}

// DefaultConfig returns the default list windowing configuration.
// Default value: max=100
func DefaultConfig() Config {
	return Config{
		MaxLimit: 100,
	}
}

// LoadFromEnv loads list windowing config from environment variables.
// Supported environment variables:
//   - LIST_MAX_LIMIT: Maximum items per request
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		MaxLimit: config.GetEnvInt("LIST_MAX_LIMIT", 100),
	}
}
