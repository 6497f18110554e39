// Package config loads the host-server configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	BackendURL   string
	CORSOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:         getEnv("TASKFLOW_ADDR", ":3000"),
		BackendURL:   getEnv("TASKFLOW_BACKEND_URL", "http://localhost:8000/api"),
		CORSOrigins:  splitCSV(getEnv("TASKFLOW_CORS_ORIGINS", "*")),
		ReadTimeout:  getDuration("TASKFLOW_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getDuration("TASKFLOW_WRITE_TIMEOUT", 30*time.Second),
		Debug:        strings.EqualFold(getEnv("TASKFLOW_DEBUG", "false"), "true"),
	}

	if _, err := url.ParseRequestURI(cfg.BackendURL); err != nil {
		return Config{}, fmt.Errorf("TASKFLOW_BACKEND_URL: %w", err)
	}
	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("TASKFLOW_ADDR cannot be empty")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
