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

// TestOllamaProvider verifies that ollamaProvider builds the chat request
// correctly and turns the reply into code.
//
// TECHNIQUE: an httptest server stands in for the Ollama API, so the test
// makes no real network calls.
func TestOllamaProvider(t *testing.T) {
	var captured chatRequest
	var capturedMethod, capturedPath string
	reply := "Here you go:\n```lua\nlocal Library = {}\nreturn Library\n```\nEnjoy!"
	status := http.StatusOK

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"model not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(chatResponse{
			Model:   captured.Model,
			Message: Message{Role: "assistant", Content: reply},
			Done:    true,
		})
		assert.NoError(t, err)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL+"/", "qwen2.5-coder")
	ctx := context.Background()
	settings := model.DefaultSettings()

	t.Run("Generate", func(t *testing.T) {
		code, err := provider.Generate(ctx, "a dark themed hub", settings)
		require.NoError(t, err)
		assert.Equal(t, "local Library = {}\nreturn Library", code)

		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "/api/chat", capturedPath)
		assert.Equal(t, "qwen2.5-coder", captured.Model)
		assert.False(t, captured.Stream)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Contains(t, captured.Messages[0].Content, "MyRobloxUI")
		assert.Equal(t, Message{Role: "user", Content: "a dark themed hub"}, captured.Messages[1])
	})

	t.Run("Empty reply", func(t *testing.T) {
		reply = "   "
		defer func() { reply = "local x = 1" }()

		_, err := provider.Generate(ctx, "anything", settings)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("Non-200 status", func(t *testing.T) {
		status = http.StatusNotFound
		defer func() { status = http.StatusOK }()

		_, err := provider.Generate(ctx, "anything", settings)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "model not found")
	})
}

func TestOllamaProvider_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOllamaProvider(server.URL, "m").Generate(ctx, "hi", model.DefaultSettings())
	assert.ErrorIs(t, err, context.Canceled)
}
