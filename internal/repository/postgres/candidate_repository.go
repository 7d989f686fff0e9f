package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `
		SELECT id, user_id, full_name, COALESCE(title, ''), COALESCE(bio, ''),
		       skills, COALESCE(phone, ''), photo_url, cv_url, created_at, updated_at
		FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	var skills []string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Title, &p.Bio,
		pq.Array(&skills), &p.Phone, &p.PhotoURL, &p.CvURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *candidateRepository) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `
		INSERT INTO candidate_profiles
			(user_id, full_name, title, bio, skills, phone, photo_url, cv_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Title, profile.Bio,
		pq.Array(profile.Skills), profile.Phone, profile.PhotoURL, profile.CvURL,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *candidateRepository) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `
		UPDATE candidate_profiles SET
			full_name = $2, title = $3, bio = $4, skills = $5,
			phone = $6, photo_url = $7, cv_url = $8, updated_at = $9
		WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FullName, profile.Title, profile.Bio,
		pq.Array(profile.Skills), profile.Phone, profile.PhotoURL, profile.CvURL,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
