package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"ui-architect/backend/internal/model"
)

const upsertSettingQuery = "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"

// Keys of the settings table, in the order they are written.
const (
	keyLibraryName      = "library_name"
	keyAddTopbar        = "add_topbar"
	keyAddCloseButton   = "add_close_button"
	keyAnimatedTopbar   = "animated_topbar"
	keyAddKeySystem     = "add_key_system"
	keyMaxLines         = "max_lines"
	keySelectedElements = "selected_elements"
)

type sqliteSettingsStore struct {
	db *sql.DB
}

// NewSQLiteSettingsStore keeps settings as key/value rows in the settings table.
func NewSQLiteSettingsStore(db *sql.DB) SettingsStore {
	return &sqliteSettingsStore{db: db}
}

func (s *sqliteSettingsStore) Load(ctx context.Context) (*model.GenerationSettings, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not query settings: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("could not scan setting: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNotFound
	}

	// Missing keys fall back to the defaults.
	settings := model.DefaultSettings()
	if v, ok := values[keyLibraryName]; ok {
		settings.LibraryName = v
	}
	for key, dst := range map[string]*bool{
		keyAddTopbar:      &settings.AddTopbar,
		keyAddCloseButton: &settings.AddCloseButton,
		keyAnimatedTopbar: &settings.AnimatedTopbar,
		keyAddKeySystem:   &settings.AddKeySystem,
	} {
		if v, ok := values[key]; ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", key, err)
			}
			*dst = b
		}
	}
	if v, ok := values[keyMaxLines]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", keyMaxLines, err)
		}
		settings.MaxLines = n
	}
	if v, ok := values[keySelectedElements]; ok {
		var kinds []model.ElementKind
		if err := json.Unmarshal([]byte(v), &kinds); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", keySelectedElements, err)
		}
		settings.SelectedElements = kinds
	}
	settings.Normalize()
	return &settings, nil
}

func (s *sqliteSettingsStore) Save(ctx context.Context, settings model.GenerationSettings) error {
	selected, err := json.Marshal(settings.Snapshot().SelectedElements)
	if err != nil {
		return fmt.Errorf("could not marshal selected elements: %w", err)
	}
	pairs := [][2]string{
		{keyLibraryName, settings.LibraryName},
		{keyAddTopbar, strconv.FormatBool(settings.AddTopbar)},
		{keyAddCloseButton, strconv.FormatBool(settings.AddCloseButton)},
		{keyAnimatedTopbar, strconv.FormatBool(settings.AnimatedTopbar)},
		{keyAddKeySystem, strconv.FormatBool(settings.AddKeySystem)},
		{keyMaxLines, strconv.Itoa(settings.MaxLines)},
		{keySelectedElements, string(selected)},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertSettingQuery)
	if err != nil {
		return fmt.Errorf("could not prepare settings statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range pairs {
		if _, err := stmt.ExecContext(ctx, p[0], p[1]); err != nil {
			return fmt.Errorf("could not save setting %s: %w", p[0], err)
		}
	}
	return tx.Commit()
}
