// Package testutil provides in-memory repository implementations and
// config fixtures for tests, so no database is needed.
package testutil

import (
	"time"

	"notes-backend/pkg/config"
)

// TestConfig returns a config with deterministic secrets and short,
// non-zero expiries.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		Environment:        "test",
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: 24 * time.Hour,
	}
}
