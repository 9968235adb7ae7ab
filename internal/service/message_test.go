package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickgig-backend/internal/domain"
)

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()
	senderID := domain.UserID("user-1")
	receiverID := domain.UserID("user-2")

	t.Run("Success", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		profileRepo := new(MockProfileRepo)
		publisher := new(MockPublisher)
		svc := NewMessageService(msgRepo, profileRepo, publisher)

		profileRepo.On("GetByID", ctx, receiverID).Return(&domain.Profile{ID: receiverID}, nil)
		profileRepo.On("GetByID", ctx, senderID).Return(&domain.Profile{ID: senderID, FullName: "Asha"}, nil)
		msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
		publisher.On("Publish", ctx, receiverID, mock.MatchedBy(func(ev domain.Event) bool {
			return ev.Kind == domain.EventMessageReceived &&
				ev.Message != nil &&
				ev.Message.SenderName == "Asha" &&
				ev.Message.ReceiverID == receiverID
		})).Return(nil)

		msg, err := svc.Send(ctx, senderID, receiverID, "hello")
		assert.NoError(t, err)
		assert.NotNil(t, msg)
		assert.Equal(t, "hello", msg.Content)
		publisher.AssertExpectations(t)
	})

	t.Run("SelfMessageRejected", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		svc := NewMessageService(msgRepo, new(MockProfileRepo), new(MockPublisher))

		msg, err := svc.Send(ctx, senderID, senderID, "hello me")
		assert.ErrorIs(t, err, ErrSelfMessage)
		assert.Nil(t, msg)
		msgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnknownReceiver", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		profileRepo := new(MockProfileRepo)
		svc := NewMessageService(msgRepo, profileRepo, new(MockPublisher))

		profileRepo.On("GetByID", ctx, receiverID).Return(nil, errors.New("not found"))

		msg, err := svc.Send(ctx, senderID, receiverID, "hello")
		assert.Error(t, err)
		assert.Nil(t, msg)
		msgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("PublishFailureDoesNotFailSend", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		profileRepo := new(MockProfileRepo)
		publisher := new(MockPublisher)
		svc := NewMessageService(msgRepo, profileRepo, publisher)

		profileRepo.On("GetByID", ctx, receiverID).Return(&domain.Profile{ID: receiverID}, nil)
		profileRepo.On("GetByID", ctx, senderID).Return(&domain.Profile{ID: senderID}, nil)
		msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
		publisher.On("Publish", ctx, receiverID, mock.AnythingOfType("domain.Event")).
			Return(errors.New("redis down"))

		msg, err := svc.Send(ctx, senderID, receiverID, "hello")
		assert.NoError(t, err)
		assert.NotNil(t, msg)
	})
}

func TestMessageService_MarkRead(t *testing.T) {
	ctx := context.Background()
	msgRepo := new(MockMessageRepo)
	svc := NewMessageService(msgRepo, new(MockProfileRepo), new(MockPublisher))

	// The repo query scopes the update to the receiver; the service just
	// passes the viewer through.
	msgRepo.On("MarkRead", ctx, "msg-1", domain.UserID("user-2")).Return(nil)
	assert.NoError(t, svc.MarkRead(ctx, domain.UserID("user-2"), "msg-1"))
	msgRepo.AssertExpectations(t)
}
