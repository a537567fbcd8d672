package repository

import (
	"context"

	"ui-architect/backend/internal/model"
)

// Repository is the append-only conversation log. There is no
// way to update, delete or reorder a message once it has been appended.
type Repository interface {
	// Append assigns msg.Seq and stores msg as the new last element.
	Append(ctx context.Context, msg *model.Message) error
	// All returns the full conversation in append order. The returned slice
	// is owned by the caller.
	All(ctx context.Context) ([]model.Message, error)
}

// SettingsStore persists generation settings between sessions.
type SettingsStore interface {
	Load(ctx context.Context) (*model.GenerationSettings, error)
	Save(ctx context.Context, settings model.GenerationSettings) error
}
