package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quickgig-backend/internal/cache"
	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/logger"
	"quickgig-backend/internal/realtime"
	"quickgig-backend/internal/repository"
)

// applicationService drives the application lifecycle: PENDING on apply,
// then ACCEPTED for the hired applicant and REJECTED for every sibling. The
// store offers no multi-statement atomicity, so hire applies its three
// sub-effects in a fixed order and keeps each one idempotent; a retry after
// a partial failure converges on the same terminal state.
type applicationService struct {
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
	publisher   realtime.Publisher
	cache       *cache.Cache
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	publisher realtime.Publisher,
	c *cache.Cache,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		publisher:   publisher,
		cache:       c,
	}
}

func (s *applicationService) Apply(ctx context.Context, jobID domain.JobID, applicantID domain.UserID) (*domain.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status != domain.JobStatusOpen {
		return nil, ErrJobClosed
	}
	if job.OwnerID == applicantID {
		return nil, ErrInvalidApplicant
	}

	existing, err := s.appRepo.GetByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      domain.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.notifyOwnerOfApplication(ctx, job, applicantID)
	return app, nil
}

func (s *applicationService) Hire(ctx context.Context, applicationID domain.ApplicationID, actorID domain.UserID) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("load application: %w", err)
	}
	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}

	if job.OwnerID != actorID {
		return ErrNotOwner
	}
	if app.Status == domain.ApplicationStatusRejected {
		return ErrAlreadyDecided
	}

	// An already-ACCEPTED application means a previous hire attempt got at
	// least through step one; finish the remaining steps instead of failing,
	// so retries after a partial failure converge.
	resuming := app.Status == domain.ApplicationStatusAccepted
	if !resuming && job.Status != domain.JobStatusOpen {
		return ErrJobClosed
	}

	// Step 1: accept the target application.
	if !resuming {
		if err := s.appRepo.UpdateStatus(ctx, app.ID, domain.ApplicationStatusAccepted); err != nil {
			return fmt.Errorf("accept application: %w", err)
		}
	}

	// Step 2: reject every remaining PENDING sibling.
	siblings, err := s.appRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return &HirePartialError{Step: HireStepRejectSiblings, Err: err}
	}
	for _, sib := range siblings {
		if sib.ID == app.ID || sib.Status != domain.ApplicationStatusPending {
			continue
		}
		if err := s.appRepo.UpdateStatus(ctx, sib.ID, domain.ApplicationStatusRejected); err != nil {
			return &HirePartialError{Step: HireStepRejectSiblings, Err: err}
		}
	}

	// Step 3: close the job and record who was hired.
	if job.Status == domain.JobStatusOpen {
		if err := s.jobRepo.UpdateStatus(ctx, job.ID, domain.JobStatusAccepted, &app.ApplicantID); err != nil {
			return &HirePartialError{Step: HireStepCloseJob, Err: err}
		}
		s.cache.Delete(ctx, feedCacheKey)
	}

	if !resuming {
		s.notifyApplicantOfHire(ctx, job, app)
	}
	return nil
}

func (s *applicationService) Withdraw(ctx context.Context, applicationID domain.ApplicationID, actorID domain.UserID) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("load application: %w", err)
	}
	if app.ApplicantID != actorID {
		return ErrNotOwner
	}
	if app.Status != domain.ApplicationStatusPending {
		return ErrAlreadyDecided
	}
	return s.appRepo.Delete(ctx, app.ID)
}

func (s *applicationService) ListForJob(ctx context.Context, jobID domain.JobID, actorID domain.UserID) ([]domain.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if job.OwnerID != actorID {
		return nil, ErrNotOwner
	}
	return s.appRepo.ListByJob(ctx, jobID)
}

func (s *applicationService) ListForApplicant(ctx context.Context, applicantID domain.UserID) ([]domain.Application, error) {
	return s.appRepo.ListByApplicant(ctx, applicantID)
}

// notifyOwnerOfApplication is best-effort: a failed notification never fails
// the apply itself.
func (s *applicationService) notifyOwnerOfApplication(ctx context.Context, job *domain.Job, applicantID domain.UserID) {
	applicant, err := s.profileRepo.GetByID(ctx, applicantID)
	if err != nil {
		logger.Warn("Could not load applicant profile for notification", "applicant_id", applicantID, "error", err)
		return
	}

	name := applicant.FullName
	if name == "" {
		name = applicant.Username
	}

	note := &domain.Notification{
		UserID: job.OwnerID,
		Title:  "New applicant",
		Body:   fmt.Sprintf("%s applied to %s", name, job.Title),
		Attributes: map[string]string{
			"type":   "NEW_APPLICATION",
			"job_id": string(job.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Could not persist application notification", "job_id", job.ID, "error", err)
	}

	if owner, err := s.userRepo.GetByID(ctx, job.OwnerID); err == nil {
		_ = s.emailSvc.SendApplicationReceived(ctx, owner.Email, name, job.Title)
	}
}

func (s *applicationService) notifyApplicantOfHire(ctx context.Context, job *domain.Job, app *domain.Application) {
	note := &domain.Notification{
		UserID: app.ApplicantID,
		Title:  "You were hired",
		Body:   fmt.Sprintf("You were hired for %s", job.Title),
		Attributes: map[string]string{
			"type":           "APPLICATION_ACCEPTED",
			"job_id":         string(job.ID),
			"application_id": string(app.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Could not persist hire notification", "application_id", app.ID, "error", err)
	}

	ev := domain.NewHireEvent(domain.ApplicationAccepted{
		ApplicationID: app.ID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		ApplicantID:   app.ApplicantID,
	})
	if err := s.publisher.Publish(ctx, app.ApplicantID, ev); err != nil {
		logger.Warn("Could not publish hire event", "application_id", app.ID, "error", err)
	}

	applicant, err := s.profileRepo.GetByID(ctx, app.ApplicantID)
	if err != nil {
		return
	}
	if user, err := s.userRepo.GetByID(ctx, app.ApplicantID); err == nil {
		_ = s.emailSvc.SendHireDecision(ctx, user.Email, applicant.FullName, job.Title)
	}
}
