package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/repository"
)

func setupSettingsStore(t *testing.T) (repository.SettingsStore, *sql.DB, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	return repository.NewSQLiteSettingsStore(db), db, mockDB
}

func TestSQLiteSettingsStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Stored values override defaults", func(t *testing.T) {
		store, db, mockDB := setupSettingsStore(t)
		defer func() { _ = db.Close() }()

		rows := sqlmock.NewRows([]string{"key", "value"}).
			AddRow("library_name", "Sapphire Hub").
			AddRow("add_key_system", "true").
			AddRow("max_lines", "9000").
			AddRow("selected_elements", `["Dropdown","Dropdown","Label"]`)
		mockDB.ExpectQuery("SELECT key, value FROM settings").WillReturnRows(rows)

		settings, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Sapphire Hub", settings.LibraryName)
		assert.True(t, settings.AddKeySystem)
		assert.True(t, settings.AddTopbar)
		assert.Equal(t, 7500, settings.MaxLines)
		assert.Equal(t, []model.ElementKind{model.ElementDropdown, model.ElementLabel}, settings.SelectedElements)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Failure - Nothing stored", func(t *testing.T) {
		store, db, mockDB := setupSettingsStore(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectQuery("SELECT key, value FROM settings").WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

		settings, err := store.Load(ctx)
		assert.Nil(t, settings)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Failure - Corrupt boolean", func(t *testing.T) {
		store, db, mockDB := setupSettingsStore(t)
		defer func() { _ = db.Close() }()

		rows := sqlmock.NewRows([]string{"key", "value"}).AddRow("add_topbar", "maybe")
		mockDB.ExpectQuery("SELECT key, value FROM settings").WillReturnRows(rows)

		_, err := store.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "add_topbar")
	})

	t.Run("Failure - DB error", func(t *testing.T) {
		store, db, mockDB := setupSettingsStore(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectQuery("SELECT key, value FROM settings").WillReturnError(errors.New("db error"))

		_, err := store.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestSQLiteSettingsStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Upserts every key in one transaction", func(t *testing.T) {
		store, db, mockDB := setupSettingsStore(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectBegin()
		prep := mockDB.ExpectPrepare(regexp.QuoteMeta("INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"))
		prep.ExpectExec().WithArgs("library_name", "MyRobloxUI").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("add_topbar", "true").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("add_close_button", "true").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("animated_topbar", "true").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("add_key_system", "false").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("max_lines", "2500").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("selected_elements", `["Button","Toggle","Slider"]`).WillReturnResult(sqlmock.NewResult(1, 1))
		mockDB.ExpectCommit()

		require.NoError(t, store.Save(ctx, model.DefaultSettings()))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Failure - Exec error rolls back", func(t *testing.T) {
		store, db, mockDB := setupSettingsStore(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectBegin()
		prep := mockDB.ExpectPrepare("INSERT INTO settings")
		prep.ExpectExec().WithArgs("library_name", "MyRobloxUI").WillReturnError(errors.New("locked"))
		mockDB.ExpectRollback()

		err := store.Save(ctx, model.DefaultSettings())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "library_name")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
