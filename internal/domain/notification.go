package domain

import "time"

// Notification is a persisted per-user notification row, distinct from the
// transient NotificationPayload pushed over the realtime channel.
type Notification struct {
	ID         string            `json:"id"`
	UserID     UserID            `json:"user_id"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NotificationPayload is what the client displays for an inbound event,
// together with the screen it should navigate to when tapped.
type NotificationPayload struct {
	Headline    string `json:"headline"`
	Body        string `json:"body"`
	TargetRoute string `json:"target_route"`
}
