package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Empty(t, cfg.ActivitiesFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("ACTIVITIES_FILE", "/etc/activities.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3000")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddress)
	assert.Equal(t, "/etc/activities.yaml", cfg.ActivitiesFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
}
