package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// GetStats gathers the dashboard counters in one round trip.
func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'admin'),
			(SELECT COUNT(*) FROM users WHERE role = 'enterprise'),
			(SELECT COUNT(*) FROM users WHERE role = 'candidate'),
			(SELECT COUNT(*) FROM company_profiles),
			(SELECT COUNT(*) FROM job_offers),
			(SELECT COUNT(*) FROM job_offers WHERE status = 'active'),
			(SELECT COUNT(*) FROM applications)`

	var s domain.AdminStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalUsers,
		&s.UsersByRole.Admin,
		&s.UsersByRole.Enterprise,
		&s.UsersByRole.Candidate,
		&s.TotalCompanies,
		&s.TotalJobOffers,
		&s.ActiveJobOffers,
		&s.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
