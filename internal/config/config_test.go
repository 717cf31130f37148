package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "GOOGLE_API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL",
		"GEMINI_TEMPERATURE", "GEMINI_MAX_OUTPUT_TOKENS", "MAX_FILE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.4, cfg.Gemini.Temperature, 0.0001)
	assert.Equal(t, int32(4096), cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("GEMINI_TEMPERATURE", "0.9")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "1024")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.InDelta(t, 0.9, cfg.Gemini.Temperature, 0.0001)
	assert.Equal(t, int32(1024), cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
}

func TestLoad_GeminiKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "fallback-key")

	assert.Equal(t, "fallback-key", Load().Gemini.APIKey)

	t.Setenv("GOOGLE_API_KEY", "primary-key")
	assert.Equal(t, "primary-key", Load().Gemini.APIKey)
}

func TestLoad_InvalidNumbersUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_FILE_SIZE", "ten megabytes")
	t.Setenv("GEMINI_TEMPERATURE", "warm")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.InDelta(t, 0.4, cfg.Gemini.Temperature, 0.0001)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.Gemini.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}
