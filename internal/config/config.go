// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DBPath     string
	PageSize   int
}

// Load reads configuration from environment variables and returns a validated
// Config. All variables are optional: CORKBOARD_LISTEN_ADDR (127.0.0.1:8080),
// CORKBOARD_DB_PATH (corkboard.db), CORKBOARD_PAGE_SIZE (10, must be a
// positive integer).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("CORKBOARD_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "corkboard.db"
	if v, ok := os.LookupEnv("CORKBOARD_DB_PATH"); ok {
		dbPath = v
	}

	pageSize := 10
	if v, ok := os.LookupEnv("CORKBOARD_PAGE_SIZE"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("CORKBOARD_PAGE_SIZE must be a positive integer, got %q", v)
		}
		pageSize = parsed
	}

	return &Config{
		ListenAddr: listenAddr,
		DBPath:     dbPath,
		PageSize:   pageSize,
	}, nil
}
