package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

// Job offer status
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// JobOffer is an open position published by an enterprise. Requirements are
// free-text strings matched against candidate skills at application time.
type JobOffer struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Title        string    `json:"title" validate:"required,min=3,max=150"`
	Description  string    `json:"description" validate:"max=5000"`
	Requirements []string  `json:"requirements"`
	Location     string    `json:"location" validate:"max=150"`
	SalaryMin    float64   `json:"salary_min" validate:"gte=0"`
	SalaryMax    float64   `json:"salary_max" validate:"gte=0"`
	Status       string    `json:"status"` // active / closed
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobOfferWithCompany extends JobOffer with company data for listings.
type JobOfferWithCompany struct {
	JobOffer
	CompanyName    string  `json:"company_name"`
	CompanyLogoURL *string `json:"company_logo_url"`
}

type JobOfferRepository interface {
	Create(ctx context.Context, job *JobOffer) error
	GetByID(ctx context.Context, id int64) (*JobOffer, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobOfferWithCompany, error)
	FetchActive(ctx context.Context, limit, offset int) ([]JobOfferWithCompany, int64, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]JobOffer, int64, error)
	Update(ctx context.Context, job *JobOffer) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	// Delete removes the job and cascades to its applications (and their
	// interviews) in a single transaction.
	Delete(ctx context.Context, id int64) error
}

type JobOfferUsecase interface {
	CreateJob(ctx context.Context, userID string, job *JobOffer) error
	GetJobDetails(ctx context.Context, id int64) (*JobOfferWithCompany, error)
	ListActiveJobs(ctx context.Context, page, pageSize int) ([]JobOfferWithCompany, int64, error)
	ListJobsByEnterprise(ctx context.Context, userID string, page, pageSize int) ([]JobOffer, int64, error)
	UpdateJob(ctx context.Context, userID string, job *JobOffer) error
	CloseJob(ctx context.Context, userID string, id int64) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
