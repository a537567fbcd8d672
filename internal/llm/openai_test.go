package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ui-architect/backend/internal/model"
)

func TestOpenAIProvider_Generate(t *testing.T) {
	var capturedPath, capturedAuth string
	var captured struct {
		Model    string    `json:"model"`
		Messages []Message `json:"messages"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "` + "```lua\\nreturn {}\\n```" + `"}}]
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	provider := NewOpenAIProvider("sk-test", server.URL+"/v1", "gpt-4o-mini")
	code, err := provider.Generate(context.Background(), "minimal library", model.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, "return {}", code)
	assert.Equal(t, "/v1/chat/completions", capturedPath)
	assert.Equal(t, "Bearer sk-test", capturedAuth)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "minimal library", captured.Messages[1].Content)
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "rate_limit"}}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("sk-test", server.URL+"/v1", "gpt-4o-mini")
	_, err := provider.Generate(context.Background(), "anything", model.DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
