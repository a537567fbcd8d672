package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"ui-architect/backend/internal/model"
)

type redisRepository struct {
	rdb            *redis.Client
	conversationID string
	// Serializes the INCR and RPUSH pair so list order follows Seq.
	mu sync.Mutex
}

// NewRedisRepository keeps the conversation as a Redis list of JSON encoded
// messages.
func NewRedisRepository(rdb *redis.Client, conversationID string) Repository {
	return &redisRepository{rdb: rdb, conversationID: conversationID}
}

// Key Generation Helpers
func (r *redisRepository) messagesKey() string { return fmt.Sprintf("conversation:%s:messages", r.conversationID) }
func (r *redisRepository) seqKey() string      { return fmt.Sprintf("conversation:%s:seq", r.conversationID) }

func (r *redisRepository) Append(ctx context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq, err := r.rdb.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("could not allocate message sequence: %w", err)
	}
	stored := *msg
	stored.Seq = seq
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("could not marshal message: %w", err)
	}
	if err := r.rdb.RPush(ctx, r.messagesKey(), data).Err(); err != nil {
		return fmt.Errorf("could not push message: %w", err)
	}
	msg.Seq = seq
	return nil
}

func (r *redisRepository) All(ctx context.Context) ([]model.Message, error) {
	items, err := r.rdb.LRange(ctx, r.messagesKey(), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.Message{}, nil
		}
		return nil, err
	}
	messages := make([]model.Message, 0, len(items))
	for _, item := range items {
		var msg model.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("could not decode message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
