package repository

import (
	"context"
	"time"

	"quickgig-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id domain.JobID) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	// UpdateStatus transitions the job and, when the workflow closes it by
	// hiring, records the hired applicant.
	UpdateStatus(ctx context.Context, id domain.JobID, status domain.JobStatus, hiredApplicant *domain.UserID) error
	// Delete removes the job and cascades to its applications.
	Delete(ctx context.Context, id domain.JobID) error
	// ListOpen returns all OPEN jobs with owner profiles attached, newest
	// first. Viewer exclusion happens in the feed layer.
	ListOpen(ctx context.Context) ([]domain.Job, error)
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]domain.Job, error)
	// CloseExpired closes OPEN jobs whose job date is before the given day
	// and returns how many were affected.
	CloseExpired(ctx context.Context, before string) (int64, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID domain.JobID, applicantID domain.UserID) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id domain.ApplicationID, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id domain.ApplicationID) error
	ListByJob(ctx context.Context, jobID domain.JobID) ([]domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID domain.UserID) ([]domain.Application, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// Conversation returns all messages between the two users, oldest first.
	Conversation(ctx context.Context, a, b domain.UserID) ([]domain.Message, error)
	// ListConversations returns the latest message per counterpart for the
	// given user, newest conversation first.
	ListConversations(ctx context.Context, userID domain.UserID) ([]domain.Message, error)
	// MarkRead flips the read flag; only the receiver may do so, which the
	// query enforces.
	MarkRead(ctx context.Context, id string, receiverID domain.UserID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID domain.UserID, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id string, userID domain.UserID) error
	// PurgeRead deletes read notifications created before the cutoff.
	PurgeRead(ctx context.Context, before time.Time) (int64, error)
}
