package llm

import (
	"context"
	"errors"

	"ui-architect/backend/internal/model"
)

// ErrEmptyResponse is returned when a backend answers without any code.
var ErrEmptyResponse = errors.New("llm: empty response")

// Generator turns a user request plus a settings snapshot into Luau source.
// Implementations must not retain or mutate settings.
type Generator interface {
	Generate(ctx context.Context, prompt string, settings model.GenerationSettings) (string, error)
}

// Message is a single chat turn sent to a backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// buildMessages returns the system and user turns shared by every backend.
func buildMessages(prompt string, settings model.GenerationSettings) []Message {
	return []Message{
		{Role: "system", Content: BuildSystemPrompt(settings)},
		{Role: "user", Content: prompt},
	}
}

// finish normalizes a raw backend reply into code.
func finish(raw string) (string, error) {
	code := ExtractCode(raw)
	if code == "" {
		return "", ErrEmptyResponse
	}
	return code, nil
}
