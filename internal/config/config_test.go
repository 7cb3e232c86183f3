package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDefault(t *testing.T) {
	t.Setenv("GHANALINGO_TEST_VAR", "set")

	assert.Equal(t, "set", EnvDefault("GHANALINGO_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", EnvDefault("GHANALINGO_TEST_MISSING", "fallback"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("GHANALINGO_TEST_PORT", "3001")
	t.Setenv("GHANALINGO_TEST_BAD", "not-a-number")

	assert.Equal(t, 3001, EnvIntDefault("GHANALINGO_TEST_PORT", 3000))
	assert.Equal(t, 3000, EnvIntDefault("GHANALINGO_TEST_BAD", 3000))
	assert.Equal(t, 3000, EnvIntDefault("GHANALINGO_TEST_UNSET", 3000))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "auto", cfg.DBEngine)
	assert.Equal(t, 3000, cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.SessionSecret)
}
