package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique constraint on
// (job_offer_id, candidate_user_id) is the authoritative duplicate check:
// of two concurrent applies, the loser gets ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications
			(job_offer_id, candidate_user_id, status, matching_score, anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobOfferID, app.CandidateUserID, app.Status,
		app.MatchingScore, app.Anonymous, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

const applicationJoinedColumns = `
	a.id, a.job_offer_id, a.candidate_user_id, a.status, a.matching_score,
	a.anonymous, a.created_at, a.updated_at,
	cp.full_name, u.email, cp.phone, cp.photo_url, cp.cv_url,
	j.title`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(
		&app.ID, &app.JobOfferID, &app.CandidateUserID, &app.Status, &app.MatchingScore,
		&app.Anonymous, &app.CreatedAt, &app.UpdatedAt,
		&app.CandidateName, &app.CandidateEmail, &app.CandidatePhone,
		&app.CandidatePhoto, &app.CvURL,
		&app.JobTitle,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationJoinedColumns + `
		FROM applications a
		LEFT JOIN users u ON a.candidate_user_id = u.id
		LEFT JOIN candidate_profiles cp ON a.candidate_user_id = cp.user_id
		LEFT JOIN job_offers j ON a.job_offer_id = j.id
		WHERE a.id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepo) queryMany(ctx context.Context, query string, args ...interface{}) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) GetByJobOfferID(ctx context.Context, jobOfferID int64) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationJoinedColumns + `
		FROM applications a
		LEFT JOIN users u ON a.candidate_user_id = u.id
		LEFT JOIN candidate_profiles cp ON a.candidate_user_id = cp.user_id
		LEFT JOIN job_offers j ON a.job_offer_id = j.id
		WHERE a.job_offer_id = $1
		ORDER BY a.matching_score DESC, a.created_at DESC`

	return r.queryMany(ctx, query, jobOfferID)
}

func (r *applicationRepo) GetByCandidateUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationJoinedColumns + `
		FROM applications a
		LEFT JOIN users u ON a.candidate_user_id = u.id
		LEFT JOIN candidate_profiles cp ON a.candidate_user_id = cp.user_id
		LEFT JOIN job_offers j ON a.job_offer_id = j.id
		WHERE a.candidate_user_id = $1
		ORDER BY a.created_at DESC`

	return r.queryMany(ctx, query, userID)
}

func (r *applicationRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Application, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + applicationJoinedColumns + `
		FROM applications a
		LEFT JOIN users u ON a.candidate_user_id = u.id
		LEFT JOIN candidate_profiles cp ON a.candidate_user_id = cp.user_id
		LEFT JOIN job_offers j ON a.job_offer_id = j.id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2`

	applications, err := r.queryMany(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobOfferID int64, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_offer_id = $1 AND candidate_user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobOfferID, userID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) SetAnonymous(ctx context.Context, id int64, anonymous bool) error {
	query := `UPDATE applications SET anonymous = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, anonymous, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the application together with its interview in one
// transaction so no orphaned interview can remain.
func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM interviews WHERE application_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
