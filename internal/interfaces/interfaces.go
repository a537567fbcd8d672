package interfaces

import (
	"context"

	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/service"
)

// Contracts the API layer depends on. Handlers only see these, so they can be
// tested against the mocks in ./mocks.

// ChatService submits messages and exposes the conversation.
type ChatService interface {
	SubmitAsync(ctx context.Context, userText string, settings model.GenerationSettings) (<-chan service.Outcome, bool)
	Messages(ctx context.Context) ([]model.Message, error)
	IsPending() bool
}

// SettingsService manages the live generation settings.
type SettingsService interface {
	Get() model.GenerationSettings
	Update(ctx context.Context, patch service.SettingsPatch) model.GenerationSettings
	ToggleOption(ctx context.Context, opt model.Option) model.GenerationSettings
	ToggleElement(ctx context.Context, kind model.ElementKind) model.GenerationSettings
}

var (
	_ ChatService     = (*service.ChatService)(nil)
	_ SettingsService = (*service.SettingsService)(nil)
)
