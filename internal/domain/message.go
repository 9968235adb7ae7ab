package domain

import "time"

// Message is immutable once created except for IsRead, which only the
// receiver may flip.
type Message struct {
	ID         string    `json:"id"`
	SenderID   UserID    `json:"sender_id"`
	ReceiverID UserID    `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
