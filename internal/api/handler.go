package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "ui-architect/backend/internal/errors"
	"ui-architect/backend/internal/interfaces"
	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/service"
	"ui-architect/backend/internal/synth"
)

// ChatHandler serves the conversation and the generation settings.
type ChatHandler struct {
	chat     interfaces.ChatService
	settings interfaces.SettingsService
}

func NewChatHandler(chatSvc interfaces.ChatService, settingsSvc interfaces.SettingsService) *ChatHandler {
	return &ChatHandler{chat: chatSvc, settings: settingsSvc}
}

// GetSettings godoc
// @Summary      Get generation settings
// @Description  Returns the settings the next submission will be generated with.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  model.GenerationSettings
// @Router       /v1/settings [get]
func (h *ChatHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.settings.Get())
}

// UpdateSettings godoc
// @Summary      Update generation settings
// @Description  Applies a partial update. max_lines is clamped to [1, 7500] and the library name is trimmed.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      UpdateSettingsRequest  true  "Fields to change"
// @Success      200       {object}  model.GenerationSettings
// @Failure      400       {object}  ErrorResponse
// @Router       /v1/settings [patch]
func (h *ChatHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	updated := h.settings.Update(r.Context(), service.SettingsPatch{
		LibraryName:      req.LibraryName,
		MaxLines:         req.MaxLines,
		AddTopbar:        req.AddTopbar,
		AddCloseButton:   req.AddCloseButton,
		AnimatedTopbar:   req.AnimatedTopbar,
		AddKeySystem:     req.AddKeySystem,
		SelectedElements: req.SelectedElements,
	})
	respondWithJSON(w, http.StatusOK, updated)
}

// ToggleOption godoc
// @Summary      Toggle a boolean option
// @Tags         Settings
// @Produce      json
// @Param        option  path      string  true  "topbar, close_button, animated_topbar or key_system"
// @Success      200     {object}  model.GenerationSettings
// @Failure      400     {object}  ErrorResponse
// @Router       /v1/settings/options/{option}/toggle [post]
func (h *ChatHandler) ToggleOption(w http.ResponseWriter, r *http.Request) {
	opt, err := model.ParseOption(chi.URLParam(r, "option"))
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error()))
		return
	}
	respondWithJSON(w, http.StatusOK, h.settings.ToggleOption(r.Context(), opt))
}

// ToggleElement godoc
// @Summary      Toggle an element kind
// @Description  Removes the kind when selected, otherwise appends it. Adding a 13th kind is a no-op.
// @Tags         Settings
// @Produce      json
// @Param        kind  path      string  true  "Element kind, e.g. ColorPicker"
// @Success      200   {object}  model.GenerationSettings
// @Failure      400   {object}  ErrorResponse
// @Router       /v1/settings/elements/{kind}/toggle [post]
func (h *ChatHandler) ToggleElement(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseElementKind(chi.URLParam(r, "kind"))
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error()))
		return
	}
	respondWithJSON(w, http.StatusOK, h.settings.ToggleElement(r.Context(), kind))
}

// ListElements godoc
// @Summary      List element kinds
// @Description  The fixed catalogue of selectable UI elements with display labels.
// @Tags         Settings
// @Produce      json
// @Success      200  {array}  model.ElementInfo
// @Router       /v1/elements [get]
func (h *ChatHandler) ListElements(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, model.Elements())
}

// GetMessages godoc
// @Summary      Get the conversation
// @Tags         Messages
// @Produce      json
// @Success      200  {array}   model.Message
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chat.Messages(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if messages == nil {
		messages = []model.Message{}
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// PostMessage godoc
// @Summary      Submit a message
// @Description  Starts a generation with the current settings and returns immediately. Blank content, or a submission while another request is pending, is ignored.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        message  body      SubmitMessageRequest  true  "User message"
// @Success      200      {object}  StatusResponse  "ignored"
// @Success      202      {object}  StatusResponse  "accepted"
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/messages [post]
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}

	if _, ok := h.chat.SubmitAsync(r.Context(), req.Content, h.settings.Get()); !ok {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ignored"})
		return
	}
	respondWithJSON(w, http.StatusAccepted, StatusResponse{Status: "accepted"})
}

// StreamMessage godoc
// @Summary      Submit a message and wait for the reply
// @Description  Same as POST /v1/messages, but keeps the connection open and sends the outcome as Server-Sent Events. Closing the connection does not cancel the generation.
// @Tags         Messages
// @Accept       json
// @Produce      text/event-stream
// @Param        message  body      SubmitMessageRequest  true  "User message"
// @Success      200      {object}  MessageEvent  "Stream of status events"
// @Failure      400      {object}  ErrorResponse "Sent as a stream error event"
// @Router       /v1/messages/stream [post]
func (h *ChatHandler) StreamMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Error decoding request body for message stream", "error", err)
		sendStreamError(w, "Invalid request body")
		return
	}

	done, ok := h.chat.SubmitAsync(r.Context(), req.Content, h.settings.Get())
	if !ok {
		_ = writeStreamEvent(w, MessageEvent{Status: "ignored"})
		return
	}
	if err := writeStreamEvent(w, MessageEvent{Status: "accepted"}); err != nil {
		slog.Info("Client disconnected before the reply", "error", err)
		return
	}

	var outcome service.Outcome
	select {
	case outcome = <-done:
	case <-r.Context().Done():
		slog.Info("Client disconnected while waiting for the reply")
		return
	}

	if outcome != service.OutcomeReplied {
		sendStreamError(w, "Não foi possível gerar o código. Tente novamente.")
		return
	}

	messages, err := h.chat.Messages(r.Context())
	if err != nil {
		slog.Error("Could not load the reply", "error", err)
		sendStreamError(w, "Could not load the reply")
		return
	}
	_ = writeStreamEvent(w, MessageEvent{Status: "replied", Message: lastReply(messages)})
}

// GetStatus godoc
// @Summary      Request status
// @Description  Reports whether a generation request is in flight.
// @Tags         Messages
// @Produce      json
// @Success      200  {object}  PendingResponse
// @Router       /v1/status [get]
func (h *ChatHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, PendingResponse{Pending: h.chat.IsPending()})
}

// GetExample godoc
// @Summary      Usage example
// @Description  A deterministic Luau usage example built from the current settings. No model is called.
// @Tags         Settings
// @Produce      plain
// @Success      200  {string}  string
// @Router       /v1/example [get]
func (h *ChatHandler) GetExample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(synth.Synthesize(h.settings.Get()))); err != nil {
		slog.Error("Failed to write usage example", "error", err)
	}
}

// lastReply returns the newest assistant message, or nil.
func lastReply(messages []model.Message) *model.Message {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleAssistant {
			return &messages[i]
		}
	}
	return nil
}
