package repository

import (
	"context"
	"sync"

	"ui-architect/backend/internal/model"
)

type memoryRepository struct {
	mu       sync.RWMutex
	messages []model.Message
	seq      int64
}

// NewMemoryRepository returns a process-local conversation log.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Append(_ context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	msg.Seq = r.seq
	r.messages = append(r.messages, cloneMessage(*msg))
	return nil
}

func (r *memoryRepository) All(_ context.Context) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Message, len(r.messages))
	for i, m := range r.messages {
		out[i] = cloneMessage(m)
	}
	return out, nil
}

// cloneMessage copies the Code pointer target so the stored message and the
// caller's copy never alias.
func cloneMessage(m model.Message) model.Message {
	if m.Code != nil {
		code := *m.Code
		m.Code = &code
	}
	return m
}
