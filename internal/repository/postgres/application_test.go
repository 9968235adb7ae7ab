package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickgig-backend/internal/domain"
)

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.Application{JobID: "job-1", ApplicantID: "user-2"}

	mock.ExpectExec("INSERT INTO applications").
		WithArgs(sqlmock.AnyArg(), "job-1", "user-2", "PENDING", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, app)
	assert.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_GetByJobAndApplicant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "job_id", "applicant_id", "status", "created_at"}).
			AddRow("app-1", "job-1", "user-2", "PENDING", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM applications WHERE job_id").
			WithArgs(domain.JobID("job-1"), domain.UserID("user-2")).
			WillReturnRows(rows)

		app, err := repo.GetByJobAndApplicant(ctx, "job-1", "user-2")
		assert.NoError(t, err)
		require.NotNil(t, app)
		assert.Equal(t, domain.ApplicationID("app-1"), app.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE job_id").
			WithArgs(domain.JobID("job-1"), domain.UserID("user-3")).
			WillReturnError(sql.ErrNoRows)

		app, err := repo.GetByJobAndApplicant(ctx, "job-1", "user-3")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, app)
	})
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE applications SET status").
		WithArgs(domain.ApplicationStatusRejected, domain.ApplicationID("app-2")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateStatus(ctx, "app-2", domain.ApplicationStatusRejected)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_ListByJob(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "job_id", "applicant_id", "status", "created_at", "username", "full_name", "avatar_url"}).
		AddRow("app-1", "job-1", "user-2", "PENDING", time.Now().Add(-time.Hour), "rider7", "Kiran", "").
		AddRow("app-2", "job-1", "user-3", "PENDING", time.Now(), "helper", "Meera", "")

	mock.ExpectQuery("SELECT (.+) FROM applications a").
		WithArgs(domain.JobID("job-1")).
		WillReturnRows(rows)

	apps, err := repo.ListByJob(ctx, "job-1")
	assert.NoError(t, err)
	assert.Len(t, apps, 2)
	require.NotNil(t, apps[0].Applicant)
	assert.Equal(t, "rider7", apps[0].Applicant.Username)
	assert.Equal(t, domain.UserID("user-2"), apps[0].Applicant.ID)
}
