package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"ui-architect/backend/internal/model"
)

// GeminiProvider generates code through the Gemini API.
type GeminiProvider struct {
	client  *genai.Client
	modelID string

	Temperature float32
}

// GeminiOptions configures NewGeminiProvider. BaseURL is only needed to
// point the client at a non-default endpoint.
type GeminiOptions struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewGeminiProvider(ctx context.Context, opts GeminiOptions) (*GeminiProvider, error) {
	if opts.APIKey == "" || opts.Model == "" {
		return nil, fmt.Errorf("gemini api key and model must be set")
	}

	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		modelID:     opts.Model,
		Temperature: 0.2,
	}, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, settings model.GenerationSettings) (string, error) {
	temperature := g.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature: &temperature,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: BuildSystemPrompt(settings)}},
		},
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelID, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini GenerateContent: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	// Only the first candidate is used.
	var sb strings.Builder
	if cand := resp.Candidates[0]; cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return finish(sb.String())
}
