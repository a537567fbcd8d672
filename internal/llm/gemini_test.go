package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ui-architect/backend/internal/model"
)

func TestGeminiProvider_Generate(t *testing.T) {
	var capturedPath string
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "local Library = {}\n"}, {"text": "return Library"}]},
				"finishReason": "STOP"
			}]
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx, GeminiOptions{APIKey: "key", Model: "gemini-2.5-flash", BaseURL: server.URL})
	require.NoError(t, err)

	code, err := provider.Generate(ctx, "glass themed hub", model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "local Library = {}\nreturn Library", code)
	assert.True(t, strings.HasSuffix(capturedPath, "models/gemini-2.5-flash:generateContent"), capturedPath)
	assert.Contains(t, captured, "systemInstruction")
}

func TestGeminiProvider_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx, GeminiOptions{APIKey: "key", Model: "gemini-2.5-flash", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = provider.Generate(ctx, "hub", model.DefaultSettings())
	assert.ErrorContains(t, err, "no candidates")
}

func TestNewGeminiProvider_RequiresCredentials(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiOptions{Model: "gemini-2.5-flash"})
	assert.Error(t, err)
}

func TestFactory_Create(t *testing.T) {
	f := &Factory{OllamaURL: "http://localhost:11434", OllamaModel: "m", OpenAIAPIKey: "k", OpenAIModel: "gpt"}
	ctx := context.Background()

	g, err := f.Create(ctx, "Ollama")
	require.NoError(t, err)
	assert.IsType(t, &ollamaProvider{}, g)

	g, err = f.Create(ctx, ProviderOpenAI)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIProvider{}, g)

	_, err = f.Create(ctx, ProviderGemini)
	assert.Error(t, err, "gemini without credentials must fail")

	_, err = f.Create(ctx, "anthropic")
	assert.ErrorContains(t, err, "unknown llm provider")
}
