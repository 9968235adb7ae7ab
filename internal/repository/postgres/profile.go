package postgres

import (
	"context"
	"database/sql"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, username, full_name, avatar_url, phone, bio) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Username, p.FullName, p.AvatarURL, p.Phone, p.Bio)
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT id, username, full_name, avatar_url, phone, bio FROM profiles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Username, &p.FullName, &p.AvatarURL, &p.Phone, &p.Bio)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET username=$1, full_name=$2, avatar_url=$3, phone=$4, bio=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, p.Username, p.FullName, p.AvatarURL, p.Phone, p.Bio, p.ID)
	return err
}
