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

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobOfferRepository(db *pgxpool.Pool) domain.JobOfferRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobOffer) error {
	query := `
		INSERT INTO job_offers
			(company_id, title, description, requirements, location, salary_min, salary_max, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}

	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.Title, job.Description, pq.Array(job.Requirements),
		job.Location, job.SalaryMin, job.SalaryMax, job.Status,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	query := `
		SELECT id, company_id, title, description, requirements, location,
		       salary_min, salary_max, status, created_at, updated_at
		FROM job_offers WHERE id = $1`

	var j domain.JobOffer
	var requirements []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, pq.Array(&requirements),
		&j.Location, &j.SalaryMin, &j.SalaryMax, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	j.Requirements = requirements
	return &j, nil
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobOfferWithCompany, error) {
	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.requirements, j.location,
		       j.salary_min, j.salary_max, j.status, j.created_at, j.updated_at,
		       c.company_name, c.logo_url
		FROM job_offers j
		JOIN company_profiles c ON j.company_id = c.id
		WHERE j.id = $1`

	var j domain.JobOfferWithCompany
	var requirements []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, pq.Array(&requirements),
		&j.Location, &j.SalaryMin, &j.SalaryMax, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName, &j.CompanyLogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	j.Requirements = requirements
	return &j, nil
}

func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobOfferWithCompany, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM job_offers WHERE status = $1`
	if err := r.db.QueryRow(ctx, countQuery, domain.JobStatusActive).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.requirements, j.location,
		       j.salary_min, j.salary_max, j.status, j.created_at, j.updated_at,
		       c.company_name, c.logo_url
		FROM job_offers j
		JOIN company_profiles c ON j.company_id = c.id
		WHERE j.status = $1
		ORDER BY j.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, domain.JobStatusActive, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobOfferWithCompany
	for rows.Next() {
		var j domain.JobOfferWithCompany
		var requirements []string
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.Title, &j.Description, pq.Array(&requirements),
			&j.Location, &j.SalaryMin, &j.SalaryMax, &j.Status, &j.CreatedAt, &j.UpdatedAt,
			&j.CompanyName, &j.CompanyLogoURL,
		); err != nil {
			return nil, 0, err
		}
		j.Requirements = requirements
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.JobOffer, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM job_offers WHERE company_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, company_id, title, description, requirements, location,
		       salary_min, salary_max, status, created_at, updated_at
		FROM job_offers
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobOffer
	for rows.Next() {
		var j domain.JobOffer
		var requirements []string
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.Title, &j.Description, pq.Array(&requirements),
			&j.Location, &j.SalaryMin, &j.SalaryMax, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		j.Requirements = requirements
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobOffer) error {
	query := `
		UPDATE job_offers SET
			title = $2, description = $3, requirements = $4, location = $5,
			salary_min = $6, salary_max = $7, status = $8, updated_at = $9
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, pq.Array(job.Requirements),
		job.Location, job.SalaryMin, job.SalaryMax, job.Status, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE job_offers SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the job offer with its applications and their interviews
// in one transaction, so a failed cascade never strands child rows.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM interviews
		WHERE application_id IN (SELECT id FROM applications WHERE job_offer_id = $1)`, id)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM applications WHERE job_offer_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
