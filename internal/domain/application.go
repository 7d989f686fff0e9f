package domain

import (
	"context"
	"time"
)

// Application status constants. Pending is the initial state; accepted and
// rejected stay overwritable because status updates are unconditional
// (last write wins, see ApplicationUsecase.UpdateStatus).
const (
	ApplicationStatusPending            = "pending"
	ApplicationStatusAccepted           = "accepted"
	ApplicationStatusRejected           = "rejected"
	ApplicationStatusInterviewScheduled = "interview_scheduled"
)

// AnonymousEmail is the sentinel shown to enterprises in place of the
// candidate's email when an application is anonymized.
const AnonymousEmail = "anonymous@candidate.invalid"

// Application joins one candidate to one job offer. The (job_offer_id,
// candidate_user_id) pair is unique at the storage layer. MatchingScore is
// computed once when the candidate applies and never recomputed.
type Application struct {
	ID              int64     `json:"id"`
	JobOfferID      int64     `json:"job_offer_id"`
	CandidateUserID string    `json:"candidate_user_id"`
	Status          string    `json:"status"`
	MatchingScore   int       `json:"matching_score"` // 0-100, immutable after creation
	Anonymous       bool      `json:"anonymous"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for read responses
	CandidateName  *string `json:"candidate_name,omitempty"`
	CandidateEmail *string `json:"candidate_email,omitempty"`
	CandidatePhone *string `json:"candidate_phone,omitempty"`
	CandidatePhoto *string `json:"candidate_photo,omitempty"`
	CvURL          *string `json:"cv_url,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
}

// Anonymize replaces candidate-identifying fields with sentinel values.
// It is a read-time projection for the enterprise view only; the stored
// candidate data is untouched and admins always see real values.
func (a *Application) Anonymize() {
	anon := AnonymousEmail
	a.CandidateName = nil
	a.CandidateEmail = &anon
	a.CandidatePhone = nil
	a.CandidatePhoto = nil
	a.CvURL = nil
}

// ApplicationDetail bundles an application with its interview, if any.
type ApplicationDetail struct {
	Application *Application `json:"application"`
	Interview   *Interview   `json:"interview,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the application and maps a unique-constraint violation
	// on (job_offer_id, candidate_user_id) to ErrDuplicate.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobOfferID(ctx context.Context, jobOfferID int64) ([]Application, error)
	GetByCandidateUserID(ctx context.Context, userID string) ([]Application, error)
	Fetch(ctx context.Context, limit, offset int) ([]Application, int64, error)
	Exists(ctx context.Context, jobOfferID int64, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SetAnonymous(ctx context.Context, id int64, anonymous bool) error
	// Delete removes the application and its interview in one transaction.
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	// Candidate operations
	Apply(ctx context.Context, userID string, jobOfferID int64) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)

	// Enterprise / admin operations
	ListByJobOffer(ctx context.Context, jobOfferID int64) ([]Application, error)
	GetDetail(ctx context.Context, applicationID int64) (*ApplicationDetail, error)
	UpdateStatus(ctx context.Context, applicationID int64, status string) error
	ScheduleInterview(ctx context.Context, applicationID int64, scheduledAt time.Time, meetingLink string) (*Interview, error)
	UpdateInterviewStatus(ctx context.Context, applicationID int64, status string) error

	// Admin operations
	ListAll(ctx context.Context, page, pageSize int) ([]Application, int64, error)
	ToggleAnonymity(ctx context.Context, applicationID int64) (*Application, error)
	Delete(ctx context.Context, applicationID int64) error
}
