package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		AppPort:         8000,
		StorageBackend:  StorageMemory,
		ConversationKey: "default",
		LLMProvider:     "ollama",
		OllamaURL:       "http://localhost:11434",
		OllamaModel:     "qwen2.5-coder:7b",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cfg := validConfig()
		assert.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"Unknown storage backend", func(c *Config) { c.StorageBackend = "postgres" }, "STORAGE_BACKEND"},
		{"Unknown provider", func(c *Config) { c.LLMProvider = "claude" }, "LLM_PROVIDER"},
		{"SQLite without path", func(c *Config) { c.StorageBackend = StorageSQLite; c.DatabasePath = "" }, "DATABASE_PATH"},
		{"Redis without address", func(c *Config) { c.StorageBackend = StorageRedis; c.RedisAddr = "" }, "REDIS_ADDR"},
		{"Gemini without key", func(c *Config) { c.LLMProvider = "gemini"; c.GeminiModel = "gemini-2.5-flash" }, "GEMINI_API_KEY"},
		{"OpenAI without model", func(c *Config) { c.LLMProvider = "openai"; c.OpenAIAPIKey = "sk-test" }, "OPENAI_MODEL"},
		{"Malformed OpenAI base URL", func(c *Config) { c.OpenAIBaseURL = "not a url" }, "OPENAI_BASE_URL"},
		{"Port out of range", func(c *Config) { c.AppPort = 70000 }, "APP_PORT"},
		{"Empty conversation key", func(c *Config) { c.ConversationKey = "" }, "CONVERSATION_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("DATABASE_PATH", "/tmp/architect-test.db")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GENERATION_TIMEOUT", "90s")
	t.Setenv("PERSIST_SETTINGS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, StorageSQLite, cfg.StorageBackend)
	assert.Equal(t, "/tmp/architect-test.db", cfg.DatabasePath)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 90*time.Second, cfg.GenerationTimeout)
	assert.True(t, cfg.PersistSettings)
	assert.Equal(t, "default", cfg.ConversationKey)
}
