package model

import (
	"time"
)

// Role identifies who authored a message in the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message stores a single turn of the conversation. Messages are immutable
// once appended to the log.
type Message struct {
	ID        string    `json:"id"`
	Seq       int64     `json:"seq"` // Position in the conversation, assigned by the store.
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Code      *string   `json:"code,omitempty"` // Generated script, assistant turns only.
	CreatedAt time.Time `json:"created_at"`
}

// HasCode reports whether the message carries generated source.
func (m Message) HasCode() bool {
	return m.Code != nil
}
