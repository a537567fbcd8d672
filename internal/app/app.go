package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"ui-architect/backend/internal/api"
	"ui-architect/backend/internal/config"
	"ui-architect/backend/internal/database"
	"ui-architect/backend/internal/llm"
	"ui-architect/backend/internal/repository"
	"ui-architect/backend/internal/service"
)

// App holds the wired server and the connections it owns.
type App struct {
	Server   *http.Server
	Chat     *service.ChatService
	Settings *service.SettingsService

	// At most one of these is set, depending on STORAGE_BACKEND.
	DB    *sql.DB
	Redis *redis.Client
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.LLMProvider == llm.ProviderOllama {
		waitForOllama(ctx, cfg.OllamaURL)
	}

	a, err := NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("Failed to close storage connection", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "storage", cfg.StorageBackend, "llm_provider", cfg.LLMProvider)
		errCh <- a.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}
	return 0
}

// NewApp opens the configured storage, builds the generator and services,
// and returns an HTTP server ready to be started.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	repo, store, err := a.openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	factory := &llm.Factory{
		OllamaURL:     cfg.OllamaURL,
		OllamaModel:   cfg.OllamaModel,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIModel:   cfg.OpenAIModel,
	}
	generator, err := factory.Create(ctx, cfg.LLMProvider)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	if !cfg.PersistSettings {
		store = nil
	}
	a.Settings = service.NewSettingsService(store)
	settings, err := a.Settings.InitAndGet(ctx)
	if err != nil {
		// The defaults stay in effect.
		slog.Warn("Could not restore generation settings", "error", err)
	}
	slog.Info("Generation settings ready", "library_name", settings.LibraryName, "persisted", store != nil)

	a.Chat = service.NewChatService(repo, generator, service.WithGenerationTimeout(cfg.GenerationTimeout))

	chatHandler := api.NewChatHandler(a.Chat, a.Settings)
	router := api.NewRouter(chatHandler)

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}
	return a, nil
}

// openStorage returns the conversation repository and the settings store for
// the configured backend. The in-memory backend has no settings store.
func (a *App) openStorage(ctx context.Context, cfg *config.Config) (repository.Repository, repository.SettingsStore, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = db
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		return repository.NewSQLiteRepository(db, cfg.ConversationKey), repository.NewSQLiteSettingsStore(db), nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.Redis = rdb
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
		return repository.NewRedisRepository(rdb, cfg.ConversationKey), repository.NewRedisSettingsStore(rdb), nil

	default:
		slog.Info("Using in-memory conversation store.")
		return repository.NewMemoryRepository(), nil, nil
	}
}

// Close releases the storage connection, if any.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// waitForOllama polls the Ollama endpoint until it answers 200 or ctx ends.
func waitForOllama(ctx context.Context, ollamaURL string) {
	slog.Info("Waiting for Ollama to be ready...")
	client := &http.Client{Timeout: 2 * time.Second}
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ollamaURL, nil)
		if err != nil {
			slog.Warn("Invalid Ollama URL, skipping readiness check", "url", ollamaURL, "error", err)
			return
		}
		resp, err := client.Do(req)
		if resp != nil {
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in ollama health check", "error", bErr)
			}
		}
		if err == nil && resp.StatusCode == http.StatusOK {
			slog.Info("Ollama is ready.")
			return
		}
		slog.Debug("Ollama not ready yet, retrying in 3 seconds...", "url", ollamaURL, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}
