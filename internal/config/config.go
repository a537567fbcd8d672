package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

type Config struct {
	AppPort  int    `mapstructure:"APP_PORT" validate:"min=1,max=65535"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StorageBackend  string `mapstructure:"STORAGE_BACKEND" validate:"oneof=memory sqlite redis"`
	DatabasePath    string `mapstructure:"DATABASE_PATH" validate:"required_if=StorageBackend sqlite"`
	RedisAddr       string `mapstructure:"REDIS_ADDR" validate:"required_if=StorageBackend redis"`
	ConversationKey string `mapstructure:"CONVERSATION_KEY" validate:"required"`
	PersistSettings bool   `mapstructure:"PERSIST_SETTINGS"`

	LLMProvider   string `mapstructure:"LLM_PROVIDER" validate:"oneof=ollama gemini openai"`
	OllamaURL     string `mapstructure:"OLLAMA_URL" validate:"required_if=LLMProvider ollama"`
	OllamaModel   string `mapstructure:"OLLAMA_MODEL" validate:"required_if=LLMProvider ollama"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY" validate:"required_if=LLMProvider gemini"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL" validate:"required_if=LLMProvider gemini"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY" validate:"required_if=LLMProvider openai"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL" validate:"omitempty,url"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL" validate:"required_if=LLMProvider openai"`

	// Zero or negative disables the bound.
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("STORAGE_BACKEND", StorageMemory)
	viper.SetDefault("DATABASE_PATH", "/data/architect.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CONVERSATION_KEY", "default")
	viper.SetDefault("PERSIST_SETTINGS", false)
	viper.SetDefault("LLM_PROVIDER", "ollama")
	viper.SetDefault("OLLAMA_URL", "http://ollama:11434")
	viper.SetDefault("OLLAMA_MODEL", "qwen2.5-coder:7b")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GENERATION_TIMEOUT", "0s")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.StorageBackend = strings.ToLower(cfg.StorageBackend)
	cfg.LLMProvider = strings.ToLower(cfg.LLMProvider)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the backend names and that every key the selected backends
// need is set.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		key := fieldErr.Field()
		if field, ok := fieldKeys[key]; ok {
			key = field
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", key, fieldErr.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// fieldKeys maps struct fields to the environment keys users actually set.
var fieldKeys = map[string]string{
	"AppPort":         "APP_PORT",
	"StorageBackend":  "STORAGE_BACKEND",
	"DatabasePath":    "DATABASE_PATH",
	"RedisAddr":       "REDIS_ADDR",
	"ConversationKey": "CONVERSATION_KEY",
	"LLMProvider":     "LLM_PROVIDER",
	"OllamaURL":       "OLLAMA_URL",
	"OllamaModel":     "OLLAMA_MODEL",
	"GeminiAPIKey":    "GEMINI_API_KEY",
	"GeminiModel":     "GEMINI_MODEL",
	"OpenAIAPIKey":    "OPENAI_API_KEY",
	"OpenAIBaseURL":   "OPENAI_BASE_URL",
	"OpenAIModel":     "OPENAI_MODEL",
}
