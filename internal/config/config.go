// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the server.
type Config struct {
	Server struct {
		Port        int
		CORSOrigins []string
	}

	// BenchmarkFile replaces the built-in fee table when set.
	BenchmarkFile string

	Log struct {
		Level  string
		Format string
	}
}

// Load reads .env files if present, then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// Existing environment variables win over the file.
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	cfg.Server.Port = 3000
	if v, err := strconv.Atoi(getEnv("FACILITY_PORT", "")); err == nil && v > 0 {
		cfg.Server.Port = v
	}
	cfg.Server.CORSOrigins = splitList(getEnv("FACILITY_CORS_ORIGINS", "*"))
	cfg.BenchmarkFile = getEnv("FACILITY_BENCHMARK_FILE", "")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
