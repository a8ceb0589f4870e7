package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset; this also shields the test from
	// anything set in the runner's environment
	t.Setenv(EnvPort, "")
	t.Setenv(EnvTokenSecret, "")
	t.Setenv(EnvTokenTTL, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, FallbackTokenSecret, cfg.TokenSecret)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
	assert.True(t, cfg.UsingFallbackSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvTokenSecret, "configured-secret")
	t.Setenv(EnvTokenTTL, "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "configured-secret", cfg.TokenSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.False(t, cfg.UsingFallbackSecret)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv(EnvTokenTTL, "soon")

	_, err := Load()
	assert.Error(t, err)
}
