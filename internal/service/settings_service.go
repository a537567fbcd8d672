package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/repository"
)

// SettingsPatch carries a partial update. Nil fields are left unchanged.
type SettingsPatch struct {
	LibraryName    *string
	MaxLines       *int
	AddTopbar      *bool
	AddCloseButton *bool
	AnimatedTopbar *bool
	AddKeySystem   *bool
	// SelectedElements replaces the whole selection when non-nil. Duplicates
	// are dropped and the list is capped at model.MaxSelectedElements.
	SelectedElements []model.ElementKind
}

// SettingsService owns the live generation settings of the session. Every
// mutation goes through the rules on model.GenerationSettings, so the
// invariants hold no matter which surface drives it. When a store is
// configured each change is written through to it.
type SettingsService struct {
	store repository.SettingsStore

	mu      sync.RWMutex
	current model.GenerationSettings
}

// NewSettingsService starts from the defaults. store may be nil, in which
// case settings live only in memory.
func NewSettingsService(store repository.SettingsStore) *SettingsService {
	return &SettingsService{store: store, current: model.DefaultSettings()}
}

// InitAndGet loads persisted settings when there are any. Without a store,
// or when nothing was saved yet, the defaults are kept and written back.
func (s *SettingsService) InitAndGet(ctx context.Context) (model.GenerationSettings, error) {
	if s.store == nil {
		return s.Get(), nil
	}

	loaded, err := s.store.Load(ctx)
	switch {
	case err == nil:
		loaded.Normalize()
		s.mu.Lock()
		s.current = loaded.Snapshot()
		s.mu.Unlock()
		slog.Info("Loaded saved generation settings", "library_name", loaded.LibraryName)
		return s.Get(), nil
	case errors.Is(err, repository.ErrNotFound):
		slog.Info("No saved generation settings, using defaults")
		settings := s.Get()
		if err := s.store.Save(ctx, settings); err != nil {
			return settings, fmt.Errorf("failed to save initial settings: %w", err)
		}
		return settings, nil
	default:
		return s.Get(), fmt.Errorf("failed to load settings: %w", err)
	}
}

// Get returns a snapshot of the current settings.
func (s *SettingsService) Get() model.GenerationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Snapshot()
}

func (s *SettingsService) SetLibraryName(ctx context.Context, name string) model.GenerationSettings {
	return s.mutate(ctx, func(g *model.GenerationSettings) { g.SetLibraryName(name) })
}

func (s *SettingsService) SetMaxLines(ctx context.Context, n int) model.GenerationSettings {
	return s.mutate(ctx, func(g *model.GenerationSettings) { g.SetMaxLines(n) })
}

// SetMaxLinesText takes raw user input, e.g. from a text field.
func (s *SettingsService) SetMaxLinesText(ctx context.Context, text string) model.GenerationSettings {
	return s.mutate(ctx, func(g *model.GenerationSettings) { g.SetMaxLinesText(text) })
}

func (s *SettingsService) ToggleOption(ctx context.Context, opt model.Option) model.GenerationSettings {
	return s.mutate(ctx, func(g *model.GenerationSettings) { g.ToggleOption(opt) })
}

func (s *SettingsService) ToggleElement(ctx context.Context, kind model.ElementKind) model.GenerationSettings {
	return s.mutate(ctx, func(g *model.GenerationSettings) { g.ToggleElement(kind) })
}

// Update applies every non-nil field of patch as one change.
func (s *SettingsService) Update(ctx context.Context, patch SettingsPatch) model.GenerationSettings {
	return s.mutate(ctx, func(g *model.GenerationSettings) {
		if patch.LibraryName != nil {
			g.SetLibraryName(*patch.LibraryName)
		}
		if patch.MaxLines != nil {
			g.SetMaxLines(*patch.MaxLines)
		}
		if patch.AddTopbar != nil {
			g.AddTopbar = *patch.AddTopbar
		}
		if patch.AddCloseButton != nil {
			g.AddCloseButton = *patch.AddCloseButton
		}
		if patch.AnimatedTopbar != nil {
			g.AnimatedTopbar = *patch.AnimatedTopbar
		}
		if patch.AddKeySystem != nil {
			g.AddKeySystem = *patch.AddKeySystem
		}
		if patch.SelectedElements != nil {
			g.SelectedElements = slices.Clone(patch.SelectedElements)
			g.Normalize()
		}
	})
}

// mutate applies fn under the write lock and persists the result. A failed
// write is logged; the in-memory change stands.
func (s *SettingsService) mutate(ctx context.Context, fn func(*model.GenerationSettings)) model.GenerationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.current)
	snapshot := s.current.Snapshot()
	if s.store != nil {
		if err := s.store.Save(ctx, snapshot); err != nil {
			slog.Warn("Could not persist generation settings", "error", err)
		}
	}
	return snapshot
}
