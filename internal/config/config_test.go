package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Psql.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.NATS.Enabled)
	assert.Empty(t, cfg.LLM.OpenAIKey())
	assert.Empty(t, cfg.LLM.GeminiKey())
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAIModel)
	assert.Equal(t, 300, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "campaign.decisions", cfg.NATS.SubjectPrefix)
	assert.Empty(t, cfg.Telemetry.Endpoint)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/ads?sslmode=disable")
	t.Setenv("LLM_GEMINI_API_KEY", "g-key")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDRESS", "cache:6379")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, "g-key", cfg.LLM.GeminiKey())
	assert.Equal(t, 3*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
}

func TestLoadAPIKeyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openai_api_key")
	require.NoError(t, os.WriteFile(path, []byte("sk-from-file\n"), 0o600))
	t.Setenv("LLM_OPENAI_API_KEY_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", cfg.LLM.OpenAIKey())

	t.Setenv("LLM_OPENAI_API_KEY", "sk-direct")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-direct", cfg.LLM.OpenAIKey())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}
