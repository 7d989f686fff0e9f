package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

// Upsert schedules or reschedules the one interview of an application.
// A single ON CONFLICT statement keeps concurrent scheduling calls from
// ever creating a second row for the same application.
func (r *interviewRepo) Upsert(ctx context.Context, interview *domain.Interview) error {
	query := `
		INSERT INTO interviews
			(application_id, scheduled_at, meeting_link, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (application_id) DO UPDATE SET
			scheduled_at = EXCLUDED.scheduled_at,
			meeting_link = EXCLUDED.meeting_link,
			status       = EXCLUDED.status,
			updated_at   = EXCLUDED.updated_at
		RETURNING id, created_at`

	now := time.Now()
	interview.Status = domain.InterviewStatusScheduled
	interview.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		interview.ApplicationID, interview.ScheduledAt, interview.MeetingLink,
		interview.Status, now, interview.UpdatedAt,
	).Scan(&interview.ID, &interview.CreatedAt)
}

func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) (*domain.Interview, error) {
	query := `
		SELECT id, application_id, scheduled_at, meeting_link, status, created_at, updated_at
		FROM interviews WHERE application_id = $1`

	var iv domain.Interview
	err := r.db.QueryRow(ctx, query, applicationID).Scan(
		&iv.ID, &iv.ApplicationID, &iv.ScheduledAt, &iv.MeetingLink,
		&iv.Status, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) UpdateStatus(ctx context.Context, applicationID int64, status string) error {
	query := `UPDATE interviews SET status = $2, updated_at = $3 WHERE application_id = $1`
	result, err := r.db.Exec(ctx, query, applicationID, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
