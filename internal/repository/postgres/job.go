package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/repository"
)

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, owner_id, title, amount, location, latitude, longitude, job_date, shift_start, shift_end, has_food, dress_code, status, hired_applicant, created_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = domain.JobID(uuid.NewString())
	}
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	job.CreatedAt = time.Now().UTC()

	query := `INSERT INTO jobs (id, owner_id, title, amount, location, latitude, longitude, job_date, shift_start, shift_end, has_food, dress_code, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.OwnerID, job.Title, job.Amount, job.Location,
		job.Latitude, job.Longitude, job.JobDate, job.ShiftStart, job.ShiftEnd,
		job.HasFood, job.DressCode, job.Status, job.CreatedAt)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	job := &domain.Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.OwnerID, &job.Title, &job.Amount, &job.Location,
		&job.Latitude, &job.Longitude, &job.JobDate, &job.ShiftStart, &job.ShiftEnd,
		&job.HasFood, &job.DressCode, &job.Status, &job.HiredApplicant, &job.CreatedAt)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title=$1, amount=$2, location=$3, latitude=$4, longitude=$5, job_date=$6, shift_start=$7, shift_end=$8, has_food=$9, dress_code=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query,
		job.Title, job.Amount, job.Location, job.Latitude, job.Longitude,
		job.JobDate, job.ShiftStart, job.ShiftEnd, job.HasFood, job.DressCode, job.ID)
	return err
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id domain.JobID, status domain.JobStatus, hiredApplicant *domain.UserID) error {
	query := `UPDATE jobs SET status=$1, hired_applicant=COALESCE($2, hired_applicant) WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, hiredApplicant, id)
	return err
}

func (r *jobRepository) Delete(ctx context.Context, id domain.JobID) error {
	// applications.job_id carries ON DELETE CASCADE
	query := `DELETE FROM jobs WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *jobRepository) ListOpen(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT j.id, j.owner_id, j.title, j.amount, j.location, j.latitude, j.longitude, j.job_date, j.shift_start, j.shift_end, j.has_food, j.dress_code, j.status, j.hired_applicant, j.created_at,
	                 p.username, p.full_name, p.avatar_url
	          FROM jobs j
	          JOIN profiles p ON p.id = j.owner_id
	          WHERE j.status = 'OPEN'
	          ORDER BY j.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		owner := domain.Profile{}
		if err := rows.Scan(
			&job.ID, &job.OwnerID, &job.Title, &job.Amount, &job.Location,
			&job.Latitude, &job.Longitude, &job.JobDate, &job.ShiftStart, &job.ShiftEnd,
			&job.HasFood, &job.DressCode, &job.Status, &job.HiredApplicant, &job.CreatedAt,
			&owner.Username, &owner.FullName, &owner.AvatarURL); err != nil {
			return nil, err
		}
		owner.ID = job.OwnerID
		job.Owner = &owner
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.OwnerID, &job.Title, &job.Amount, &job.Location,
			&job.Latitude, &job.Longitude, &job.JobDate, &job.ShiftStart, &job.ShiftEnd,
			&job.HasFood, &job.DressCode, &job.Status, &job.HiredApplicant, &job.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) CloseExpired(ctx context.Context, before string) (int64, error) {
	query := `UPDATE jobs SET status='CLOSED' WHERE status='OPEN' AND job_date <> '' AND job_date < $1`
	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
