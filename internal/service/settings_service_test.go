package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/repository"
	"ui-architect/backend/internal/repository/mocks"
	"ui-architect/backend/internal/service"
)

func TestSettingsService_InMemory(t *testing.T) {
	ctx := context.Background()
	settingsService := service.NewSettingsService(nil)

	got, err := settingsService.InitAndGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), got)

	got = settingsService.SetLibraryName(ctx, "  Hydra ")
	assert.Equal(t, "Hydra", got.LibraryName)

	got = settingsService.SetMaxLines(ctx, 99999)
	assert.Equal(t, model.MaxMaxLines, got.MaxLines)

	got = settingsService.SetMaxLinesText(ctx, "300abc")
	assert.Equal(t, 300, got.MaxLines)

	got = settingsService.ToggleOption(ctx, model.OptionKeySystem)
	assert.True(t, got.AddKeySystem)

	got = settingsService.ToggleElement(ctx, model.ElementButton)
	assert.Equal(t, []model.ElementKind{model.ElementToggle, model.ElementSlider}, got.SelectedElements)

	assert.Equal(t, got, settingsService.Get())
}

func TestSettingsService_GetReturnsSnapshot(t *testing.T) {
	settingsService := service.NewSettingsService(nil)

	snapshot := settingsService.Get()
	snapshot.SelectedElements[0] = model.ElementSearchBar
	snapshot.LibraryName = "Mutated"

	current := settingsService.Get()
	assert.Equal(t, model.ElementButton, current.SelectedElements[0])
	assert.Equal(t, "MyRobloxUI", current.LibraryName)
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	settingsService := service.NewSettingsService(nil)

	name := "Vortex"
	lines := 0
	topbar := false
	keySystem := true
	got := settingsService.Update(ctx, service.SettingsPatch{
		LibraryName:  &name,
		MaxLines:     &lines,
		AddTopbar:    &topbar,
		AddKeySystem: &keySystem,
	})

	assert.Equal(t, "Vortex", got.LibraryName)
	assert.Equal(t, model.MinMaxLines, got.MaxLines)
	assert.False(t, got.AddTopbar)
	assert.True(t, got.AddKeySystem)
	// Untouched fields keep their values.
	assert.True(t, got.AddCloseButton)
	assert.True(t, got.AnimatedTopbar)
	assert.Len(t, got.SelectedElements, 3)

	got = settingsService.Update(ctx, service.SettingsPatch{
		SelectedElements: []model.ElementKind{model.ElementTabs, model.ElementLabel, model.ElementTabs},
	})
	assert.Equal(t, []model.ElementKind{model.ElementTabs, model.ElementLabel}, got.SelectedElements)
	assert.Equal(t, "Vortex", got.LibraryName)
}

func TestSettingsService_InitAndGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads saved settings", func(t *testing.T) {
		store := mocks.NewMockSettingsStore(t)
		saved := model.DefaultSettings()
		saved.LibraryName = "Saved"
		saved.MaxLines = 50000
		store.On("Load", ctx).Return(&saved, nil).Once()

		settingsService := service.NewSettingsService(store)
		got, err := settingsService.InitAndGet(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Saved", got.LibraryName)
		assert.Equal(t, model.MaxMaxLines, got.MaxLines)
		assert.Equal(t, got, settingsService.Get())
	})

	t.Run("Saves defaults when nothing is stored", func(t *testing.T) {
		store := mocks.NewMockSettingsStore(t)
		store.On("Load", ctx).Return(nil, repository.ErrNotFound).Once()
		store.On("Save", ctx, model.DefaultSettings()).Return(nil).Once()

		got, err := service.NewSettingsService(store).InitAndGet(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), got)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		store := mocks.NewMockSettingsStore(t)
		store.On("Load", ctx).Return(nil, errors.New("db is locked")).Once()

		got, err := service.NewSettingsService(store).InitAndGet(ctx)
		assert.ErrorContains(t, err, "failed to load settings")
		assert.Equal(t, model.DefaultSettings(), got)
	})
}

func TestSettingsService_WritesThrough(t *testing.T) {
	ctx := context.Background()

	t.Run("Every mutation is saved", func(t *testing.T) {
		store := mocks.NewMockSettingsStore(t)
		store.On("Save", ctx, mock.MatchedBy(func(s model.GenerationSettings) bool {
			return s.LibraryName == "Nova"
		})).Return(nil).Once()
		store.On("Save", ctx, mock.MatchedBy(func(s model.GenerationSettings) bool {
			return s.LibraryName == "Nova" && s.IsSelected(model.ElementTabs)
		})).Return(nil).Once()

		settingsService := service.NewSettingsService(store)
		settingsService.SetLibraryName(ctx, "Nova")
		settingsService.ToggleElement(ctx, model.ElementTabs)
	})

	t.Run("Failed save keeps the change", func(t *testing.T) {
		store := mocks.NewMockSettingsStore(t)
		store.On("Save", ctx, mock.Anything).Return(errors.New("read-only")).Once()

		settingsService := service.NewSettingsService(store)
		got := settingsService.ToggleOption(ctx, model.OptionTopbar)
		assert.False(t, got.AddTopbar)
		assert.False(t, settingsService.Get().AddTopbar)
	})
}

func TestSettingsService_ConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	settingsService := service.NewSettingsService(nil)

	var wg sync.WaitGroup
	for _, e := range model.Elements() {
		wg.Add(1)
		go func(kind model.ElementKind) {
			defer wg.Done()
			settingsService.ToggleElement(ctx, kind)
		}(e.Kind)
	}
	wg.Wait()

	// Button, Toggle and Slider were removed, the other nine were added.
	got := settingsService.Get()
	assert.Len(t, got.SelectedElements, len(model.Elements())-3)
	assert.False(t, got.IsSelected(model.ElementButton))
	assert.True(t, got.IsSelected(model.ElementSearchBar))
}
