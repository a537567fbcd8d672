package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Factory creates generators with consistent settings.
type Factory struct {
	OllamaURL     string
	OllamaModel   string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

func (f *Factory) Create(ctx context.Context, provider string) (Generator, error) {
	switch strings.ToLower(provider) {
	case ProviderOllama:
		return NewOllamaProvider(f.OllamaURL, f.OllamaModel), nil
	case ProviderGemini:
		g, err := NewGeminiProvider(ctx, GeminiOptions{APIKey: f.GeminiAPIKey, Model: f.GeminiModel, BaseURL: f.GeminiBaseURL})
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderOpenAI:
		return NewOpenAIProvider(f.OpenAIAPIKey, f.OpenAIBaseURL, f.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
