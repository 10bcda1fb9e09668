package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pjcweb/site-backend/internal/entity"
)

type ChatRepository struct {
	DB *sql.DB
}

func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) SaveMessage(ctx context.Context, m *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, session_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := r.DB.QueryRowContext(ctx, query, m.ID, m.SessionID, m.Message, m.Response).Scan(&m.Timestamp)
	if err != nil {
		return fmt.Errorf("storing chat message: %w", err)
	}
	return nil
}

func (r *ChatRepository) History(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, session_id, message, response, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading chat history: %w", err)
	}
	defer rows.Close()

	var msgs []entity.ChatMessage
	for rows.Next() {
		var m entity.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Message, &m.Response, &m.Timestamp); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
