package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

const companyProfileColumns = `
	id, user_id, company_name, logo_url, website, industry, location, description, created_at, updated_at`

func (r *companyProfileRepo) scanRow(row pgx.Row) (*domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.LogoURL, &p.Website,
		&p.Industry, &p.Location, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *companyProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	query := `SELECT ` + companyProfileColumns + ` FROM company_profiles WHERE id = $1`
	return r.scanRow(r.db.QueryRow(ctx, query, id))
}

func (r *companyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	query := `SELECT ` + companyProfileColumns + ` FROM company_profiles WHERE user_id = $1`
	return r.scanRow(r.db.QueryRow(ctx, query, userID))
}

func (r *companyProfileRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `
		INSERT INTO company_profiles
			(user_id, company_name, logo_url, website, industry, location, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.LogoURL, profile.Website,
		profile.Industry, profile.Location, profile.Description,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *companyProfileRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `
		UPDATE company_profiles SET
			company_name = $2, logo_url = $3, website = $4, industry = $5,
			location = $6, description = $7, updated_at = $8
		WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.CompanyName, profile.LogoURL, profile.Website,
		profile.Industry, profile.Location, profile.Description, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
