package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"ui-architect/backend/internal/cli"
	"ui-architect/backend/internal/clipboard"
	"ui-architect/backend/internal/config"
	"ui-architect/backend/internal/llm"
	"ui-architect/backend/internal/repository"
	"ui-architect/backend/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Only problems go to the terminal; the REPL owns stdout.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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
		fmt.Fprintln(os.Stderr, "could not create generator:", err)
		return 1
	}

	chat := service.NewChatService(repository.NewMemoryRepository(), generator, service.WithGenerationTimeout(cfg.GenerationTimeout))
	settings := service.NewSettingsService(nil)

	var copier clipboard.Copier = clipboard.System{}
	if !clipboard.Available() {
		slog.Warn("System clipboard unavailable, /copy will fail")
	}

	session := cli.NewSession(chat, settings, copier, os.Stdout, cli.NewMarkdownRenderer(100))

	historyFile := ""
	if dir, err := os.UserConfigDir(); err == nil {
		historyFile = filepath.Join(dir, "ui-architect", "history")
	}
	if err := cli.Run(ctx, session, historyFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
