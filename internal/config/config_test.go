package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "http://localhost:8000/api", cfg.BackendURL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.False(t, cfg.Debug)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TASKFLOW_ADDR", ":8080")
	t.Setenv("TASKFLOW_BACKEND_URL", "http://api.internal:9000/api")
	t.Setenv("TASKFLOW_CORS_ORIGINS", "http://localhost:3000, https://taskflow.example.com")
	t.Setenv("TASKFLOW_READ_TIMEOUT", "5s")
	t.Setenv("TASKFLOW_DEBUG", "TRUE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://api.internal:9000/api", cfg.BackendURL)
	assert.Equal(t, []string{"http://localhost:3000", "https://taskflow.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidBackendURL(t *testing.T) {
	t.Setenv("TASKFLOW_BACKEND_URL", "not a url")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("TASKFLOW_WRITE_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}
