package service

import (
	"context"
	"fmt"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/logger"
	"quickgig-backend/internal/realtime"
	"quickgig-backend/internal/repository"
)

type messageService struct {
	msgRepo     repository.MessageRepository
	profileRepo repository.ProfileRepository
	publisher   realtime.Publisher
}

func NewMessageService(msgRepo repository.MessageRepository, profileRepo repository.ProfileRepository, publisher realtime.Publisher) MessageService {
	return &messageService{msgRepo: msgRepo, profileRepo: profileRepo, publisher: publisher}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID domain.UserID, content string) (*domain.Message, error) {
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}
	// The receiver must exist; a dangling id would create an unreachable
	// conversation.
	if _, err := s.profileRepo.GetByID(ctx, receiverID); err != nil {
		return nil, fmt.Errorf("load receiver: %w", err)
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	senderName := ""
	if sender, err := s.profileRepo.GetByID(ctx, senderID); err == nil {
		senderName = sender.FullName
		if senderName == "" {
			senderName = sender.Username
		}
	}

	ev := domain.NewMessageEvent(domain.MessageReceived{
		MessageID:  msg.ID,
		SenderID:   senderID,
		SenderName: senderName,
		ReceiverID: receiverID,
		Content:    msg.Content,
	})
	if err := s.publisher.Publish(ctx, receiverID, ev); err != nil {
		logger.Warn("Could not publish message event", "message_id", msg.ID, "error", err)
	}

	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, viewerID, otherID domain.UserID) ([]domain.Message, error) {
	return s.msgRepo.Conversation(ctx, viewerID, otherID)
}

func (s *messageService) ListConversations(ctx context.Context, viewerID domain.UserID) ([]domain.Message, error) {
	return s.msgRepo.ListConversations(ctx, viewerID)
}

func (s *messageService) MarkRead(ctx context.Context, viewerID domain.UserID, messageID string) error {
	return s.msgRepo.MarkRead(ctx, messageID, viewerID)
}
