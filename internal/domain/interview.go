package domain

import (
	"context"
	"time"
)

// Interview status constants
const (
	InterviewStatusScheduled = "scheduled"
	InterviewStatusCompleted = "completed"
	InterviewStatusCancelled = "cancelled"
)

// Interview is the at-most-one meeting attached to an application.
// application_id carries a unique constraint so scheduling is an upsert.
type Interview struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	MeetingLink   string    `json:"meeting_link"`
	Status        string    `json:"status"` // scheduled / completed / cancelled
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type InterviewRepository interface {
	// Upsert inserts an interview or, when one already exists for the
	// application, updates its date/link and forces status back to
	// scheduled. Single atomic statement so concurrent scheduling calls
	// cannot create duplicate rows.
	Upsert(ctx context.Context, interview *Interview) error
	GetByApplicationID(ctx context.Context, applicationID int64) (*Interview, error)
	UpdateStatus(ctx context.Context, applicationID int64, status string) error
}
