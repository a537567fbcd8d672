package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/repository"
)

// Runs against a real server; set REDIS_TEST_ADDR to enable.
func TestRedisRepository(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer func() { _ = rdb.Close() }()
	require.NoError(t, rdb.Ping(ctx).Err())

	conversationID := "test-" + uuid.NewString()
	defer rdb.Del(ctx, "conversation:"+conversationID+":messages", "conversation:"+conversationID+":seq")

	repo := repository.NewRedisRepository(rdb, conversationID)

	empty, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	code := "local Window = {}"
	first := &model.Message{ID: uuid.NewString(), Role: model.RoleUser, Content: "hub", CreatedAt: time.Now()}
	second := &model.Message{ID: uuid.NewString(), Role: model.RoleAssistant, Content: "ok", Code: &code, CreatedAt: time.Now()}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))
	assert.Less(t, first.Seq, second.Seq)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	require.NotNil(t, all[1].Code)
	assert.Equal(t, code, *all[1].Code)
}

func TestRedisSettingsStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer func() { _ = rdb.Close() }()
	require.NoError(t, rdb.Ping(ctx).Err())
	require.NoError(t, rdb.Del(ctx, "settings").Err())
	defer rdb.Del(ctx, "settings")

	store := repository.NewRedisSettingsStore(rdb)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	want := model.DefaultSettings()
	want.SetLibraryName("Nebula")
	want.ToggleOption(model.OptionKeySystem)
	want.ToggleElement(model.ElementKeybind)
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}
