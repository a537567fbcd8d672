package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "ui-architect/backend/internal/errors"
	"ui-architect/backend/internal/model"
)

// Shared DTOs for API requests and responses, plus helpers that keep every
// response in the same shape.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by operations that have no resource to return.
type StatusResponse struct {
	Status string `json:"status" example:"accepted"`
}

// PendingResponse reports whether a generation request is in flight.
type PendingResponse struct {
	Pending bool `json:"pending"`
}

// MessageEvent is the final event of a message stream.
type MessageEvent struct {
	Status  string         `json:"status" example:"replied"`
	Message *model.Message `json:"message,omitempty"`
}

// SubmitMessageRequest is the body of a new user message. Blank content is
// accepted and ignored.
type SubmitMessageRequest struct {
	Content string `json:"content" example:"Crie uma UI com tema escuro e cantos arredondados"`
}

// UpdateSettingsRequest is a partial settings update. Absent fields are left
// unchanged; max_lines is clamped rather than rejected.
type UpdateSettingsRequest struct {
	LibraryName      *string             `json:"library_name,omitempty" example:"SapphireHub"`
	MaxLines         *int                `json:"max_lines,omitempty" example:"1500"`
	AddTopbar        *bool               `json:"add_topbar,omitempty"`
	AddCloseButton   *bool               `json:"add_close_button,omitempty"`
	AnimatedTopbar   *bool               `json:"animated_topbar,omitempty"`
	AddKeySystem     *bool               `json:"add_key_system,omitempty"`
	SelectedElements []model.ElementKind `json:"selected_elements,omitempty" validate:"omitempty,max=12,unique,dive,element_kind"`
}

// respondWithError maps business-layer errors to HTTP status codes and writes
// a standard JSON error body.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrInternal):
		statusCode = http.StatusInternalServerError
		message = "Could not read the conversation. Try again later."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// sendStreamError sends a structured error message over a Server-Sent Events
// stream.
func sendStreamError(w http.ResponseWriter, message string) {
	slog.Warn("Sending stream error to client", "message", message)

	jsonData, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		slog.Error("Failed to marshal stream error payload", "error", err)
		return
	}

	// `event: error` lets clients attach a dedicated listener.
	if _, err := fmt.Fprintf(w, "event: error\ndata: %s\n\n", string(jsonData)); err != nil {
		slog.Warn("Failed to write stream error, client might have disconnected", "error", err)
		return
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// writeStreamEvent writes data as one SSE event. A returned error means the
// client has gone away.
func writeStreamEvent(w http.ResponseWriter, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to marshal stream data to JSON", "error", err)
		return nil
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", string(jsonData)); err != nil {
		return fmt.Errorf("failed to write data to stream: %w", err)
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
