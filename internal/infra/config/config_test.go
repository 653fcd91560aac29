package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.LLM.APIKey = "test-key"
	cfg.Auth.Secret = "0123456789abcdef"
	return cfg
}

func TestDefaultConfigNeedsSecrets(t *testing.T) {
	require.Error(t, defaultConfig().Validate())
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsUnusableValues(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":        func(c *Config) { c.HTTP.Address = "" },
		"short secret":         func(c *Config) { c.Auth.Secret = "short" },
		"zero batch":           func(c *Config) { c.Articles.BatchSize = 0 },
		"zero history":         func(c *Config) { c.Chat.MaxHistoryTurns = 0 },
		"zero llm timeout":     func(c *Config) { c.LLM.Timeout = 0 },
		"unknown backend":      func(c *Config) { c.HTTP.RateLimit.Backend = "memcached" },
		"valkey without addr":  func(c *Config) { c.HTTP.RateLimit.Backend = RateLimitBackendValkey },
		"kafka without broker": func(c *Config) { c.Booking.Kafka.Enabled = true },
		"retry without tries":  func(c *Config) { c.HTTP.Retry.MaxAttempts = 0 },
	}
	for name, mutate := range cases {
		cfg := validConfig()
		mutate(cfg)
		require.Error(t, cfg.Validate(), name)
	}
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
llm:
  model: gemini-test
articles:
  batchSize: 4
auth:
  secret: file-secret-0123456789
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("CHAT_MAX_HISTORY_TURNS", "8")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTH_TOKEN_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "gemini-test", cfg.LLM.Model)
	require.Equal(t, "env-key", cfg.LLM.APIKey)
	require.Equal(t, 4, cfg.Articles.BatchSize)
	require.Equal(t, 8, cfg.Chat.MaxHistoryTurns)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, RateLimitBackendMemory, cfg.HTTP.RateLimit.Backend)
}

func TestLoadFailsWithoutAPIKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  secret: file-secret-0123456789\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
