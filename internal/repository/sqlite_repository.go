package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ui-architect/backend/internal/model"
)

type sqliteRepository struct {
	db             *sql.DB
	conversationID string
}

// NewSQLiteRepository stores the conversation identified by conversationID
// in the messages table.
func NewSQLiteRepository(db *sql.DB, conversationID string) Repository {
	return &sqliteRepository{db: db, conversationID: conversationID}
}

func (r *sqliteRepository) Append(ctx context.Context, msg *model.Message) error {
	var code sql.NullString
	if msg.Code != nil {
		code = sql.NullString{String: *msg.Code, Valid: true}
	}

	query := "INSERT INTO messages (id, conversation_id, role, content, code, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, query, msg.ID, r.conversationID, string(msg.Role), msg.Content, code, msg.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}
	// seq is an AUTOINCREMENT key, so it only ever grows.
	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read message sequence: %w", err)
	}
	msg.Seq = seq
	return nil
}

func (r *sqliteRepository) All(ctx context.Context) ([]model.Message, error) {
	query := `
		SELECT seq, id, role, content, code, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, r.conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var msg model.Message
		var role string
		var code sql.NullString
		if err := rows.Scan(&msg.Seq, &msg.ID, &role, &msg.Content, &code, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msg.Role = model.Role(role)
		if code.Valid {
			msg.Code = &code.String
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
