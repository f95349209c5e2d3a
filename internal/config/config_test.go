package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("PORT", "")
	t.Setenv("CLIENT_ORIGIN", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("OPENAI_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
	assert.False(t, cfg.Production)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("PORT", "3000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("OPENAI_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.Production)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_TIMEOUT")
}
