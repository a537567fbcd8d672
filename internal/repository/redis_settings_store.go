package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ui-architect/backend/internal/model"
)

const settingsKey = "settings"

type redisSettingsStore struct {
	rdb *redis.Client
}

// NewRedisSettingsStore keeps the settings as one JSON document under the
// "settings" key.
func NewRedisSettingsStore(rdb *redis.Client) SettingsStore {
	return &redisSettingsStore{rdb: rdb}
}

func (s *redisSettingsStore) Load(ctx context.Context) (*model.GenerationSettings, error) {
	val, err := s.rdb.Get(ctx, settingsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings from redis: %w", err)
	}

	settings := model.DefaultSettings()
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	settings.Normalize()
	return &settings, nil
}

func (s *redisSettingsStore) Save(ctx context.Context, settings model.GenerationSettings) error {
	val, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return s.rdb.Set(ctx, settingsKey, val, 0).Err()
}
