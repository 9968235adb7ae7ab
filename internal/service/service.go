package service

import (
	"context"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/feed"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, username, fullName string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, id domain.UserID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, actorID domain.UserID, profile *domain.Profile) error
}

type JobService interface {
	CreateJob(ctx context.Context, job *domain.Job) error
	UpdateJob(ctx context.Context, actorID domain.UserID, job *domain.Job) error
	DeleteJob(ctx context.Context, actorID domain.UserID, id domain.JobID) error
	GetJob(ctx context.Context, id domain.JobID) (*domain.Job, error)
	ListMyJobs(ctx context.Context, ownerID domain.UserID) ([]domain.Job, error)
	// GetFeed assembles the open-jobs view for a viewer: excludes the
	// viewer's own postings, annotates distance from the viewer's
	// coordinates when both sides are known, and applies the filter/sort
	// pipeline.
	GetFeed(ctx context.Context, viewerID domain.UserID, viewerLat, viewerLong *float64, cfg feed.Config) ([]domain.Job, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, jobID domain.JobID, applicantID domain.UserID) (*domain.Application, error)
	Hire(ctx context.Context, applicationID domain.ApplicationID, actorID domain.UserID) error
	Withdraw(ctx context.Context, applicationID domain.ApplicationID, actorID domain.UserID) error
	ListForJob(ctx context.Context, jobID domain.JobID, actorID domain.UserID) ([]domain.Application, error)
	ListForApplicant(ctx context.Context, applicantID domain.UserID) ([]domain.Application, error)
}

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID domain.UserID, content string) (*domain.Message, error)
	Conversation(ctx context.Context, viewerID, otherID domain.UserID) ([]domain.Message, error)
	ListConversations(ctx context.Context, viewerID domain.UserID) ([]domain.Message, error)
	MarkRead(ctx context.Context, viewerID domain.UserID, messageID string) error
}

type NotificationService interface {
	List(ctx context.Context, userID domain.UserID, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID domain.UserID, id string) error
}

type EmailService interface {
	SendApplicationReceived(ctx context.Context, ownerEmail, applicantName, jobTitle string) error
	SendHireDecision(ctx context.Context, applicantEmail, applicantName, jobTitle string) error
}
