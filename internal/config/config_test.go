package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("TODO_CACHE_TTL", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5*time.Minute, cfg.TodoCacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("TODO_CACHE_TTL", "30s")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.TodoCacheTTL)
	assert.True(t, cfg.IsProduction())
}

func TestGetEnvAsDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("SOME_TTL", "not-a-duration")

	assert.Equal(t, time.Minute, GetEnvAsDuration("SOME_TTL", time.Minute))
}

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("SOME_KEY", "value")

	assert.Equal(t, "value", GetEnvAsString("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnvAsString("SOME_OTHER_KEY", "fallback"))
}
