package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = time.Now().UTC()

	query := `INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at) VALUES ($1, $2, $3, $4, false, $5)`
	_, err := r.db.ExecContext(ctx, query, msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, msg.CreatedAt)
	return err
}

func (r *messageRepository) Conversation(ctx context.Context, a, b domain.UserID) ([]domain.Message, error) {
	query := `SELECT id, sender_id, receiver_id, content, is_read, created_at
	          FROM messages
	          WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	          ORDER BY created_at ASC`
	return r.queryMessages(ctx, query, a, b)
}

func (r *messageRepository) ListConversations(ctx context.Context, userID domain.UserID) ([]domain.Message, error) {
	// Latest message per counterpart, regardless of direction.
	query := `SELECT DISTINCT ON (other_id) id, sender_id, receiver_id, content, is_read, created_at
	          FROM (
	              SELECT *, CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS other_id
	              FROM messages
	              WHERE sender_id = $1 OR receiver_id = $1
	          ) m
	          ORDER BY other_id, created_at DESC`
	return r.queryMessages(ctx, query, userID)
}

func (r *messageRepository) MarkRead(ctx context.Context, id string, receiverID domain.UserID) error {
	query := `UPDATE messages SET is_read = true WHERE id = $1 AND receiver_id = $2`
	_, err := r.db.ExecContext(ctx, query, id, receiverID)
	return err
}

func (r *messageRepository) queryMessages(ctx context.Context, query string, args ...interface{}) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
