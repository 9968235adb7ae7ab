package service

import (
	"context"
	"fmt"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) List(ctx context.Context, userID domain.UserID, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.noteRepo.List(ctx, userID, pageSize, (page-1)*pageSize)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID domain.UserID, id string) error {
	return s.noteRepo.MarkAsRead(ctx, id, userID)
}

// Route turns an inbound event into what the viewer's client should display,
// and where tapping it should navigate. The recipient is re-checked here even
// though channels are per-user: a payload for someone else yields (nil, nil)
// rather than leaking into the wrong inbox.
func Route(ev domain.Event, viewerID domain.UserID) (*domain.NotificationPayload, error) {
	switch ev.Kind {
	case domain.EventMessageReceived:
		m := ev.Message
		if m == nil {
			return nil, ErrUnknownEvent
		}
		if m.SenderID == m.ReceiverID {
			return nil, ErrSelfMessage
		}
		if m.ReceiverID != viewerID {
			return nil, nil
		}
		headline := m.SenderName
		if headline == "" {
			headline = "New message"
		}
		return &domain.NotificationPayload{
			Headline:    headline,
			Body:        m.Content,
			TargetRoute: fmt.Sprintf("/chat/%s", m.SenderID),
		}, nil

	case domain.EventApplicationAccepted:
		h := ev.Hire
		if h == nil {
			return nil, ErrUnknownEvent
		}
		if h.ApplicantID != viewerID {
			return nil, nil
		}
		return &domain.NotificationPayload{
			Headline:    "You were hired",
			Body:        fmt.Sprintf("You were hired for %s", h.JobTitle),
			TargetRoute: "/my-applications",
		}, nil

	default:
		return nil, ErrUnknownEvent
	}
}
