package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = domain.ApplicationID(uuid.NewString())
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	app.CreatedAt = time.Now().UTC()

	query := `INSERT INTO applications (id, job_id, applicant_id, status, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, app.ID, app.JobID, app.ApplicantID, app.Status, app.CreatedAt)
	return err
}

func (r *applicationRepository) GetByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	app := &domain.Application{}
	query := `SELECT id, job_id, applicant_id, status, created_at FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) GetByJobAndApplicant(ctx context.Context, jobID domain.JobID, applicantID domain.UserID) (*domain.Application, error) {
	app := &domain.Application{}
	query := `SELECT id, job_id, applicant_id, status, created_at FROM applications WHERE job_id = $1 AND applicant_id = $2`
	err := r.db.QueryRowContext(ctx, query, jobID, applicantID).Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id domain.ApplicationID, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *applicationRepository) Delete(ctx context.Context, id domain.ApplicationID) error {
	query := `DELETE FROM applications WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID domain.JobID) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at,
	                 p.username, p.full_name, p.avatar_url
	          FROM applications a
	          JOIN profiles p ON p.id = a.applicant_id
	          WHERE a.job_id = $1
	          ORDER BY a.created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		applicant := domain.Profile{}
		if err := rows.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt,
			&applicant.Username, &applicant.FullName, &applicant.AvatarURL); err != nil {
			return nil, err
		}
		applicant.ID = app.ApplicantID
		app.Applicant = &applicant
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID domain.UserID) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at,
	                 j.title, j.amount, j.location, j.job_date, j.status
	          FROM applications a
	          JOIN jobs j ON j.id = a.job_id
	          WHERE a.applicant_id = $1
	          ORDER BY a.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		job := domain.Job{}
		if err := rows.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt,
			&job.Title, &job.Amount, &job.Location, &job.JobDate, &job.Status); err != nil {
			return nil, err
		}
		job.ID = app.JobID
		app.Job = &job
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
