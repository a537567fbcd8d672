package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"ui-architect/backend/internal/model"
)

// OpenAIProvider works with OpenAI and any OpenAI compatible endpoint
// (OpenRouter, vLLM, LM Studio).
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, baseURL, modelName string) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  modelName,
	}
}

func (c *OpenAIProvider) Generate(ctx context.Context, prompt string, settings model.GenerationSettings) (string, error) {
	var msgs []openai.ChatCompletionMessage
	for _, m := range buildMessages(prompt, settings) {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return finish(resp.Choices[0].Message.Content)
}
