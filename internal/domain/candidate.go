package domain

import (
	"context"
	"time"
)

// CandidateProfile holds the candidate-owned data used for matching and
// shown to enterprises reviewing applications. Skills are free text; the
// matching engine normalizes them at scoring time.
type CandidateProfile struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id" validate:"required"`
	FullName  string    `json:"full_name" validate:"required,min=2,max=100,valid_name"`
	Title     string    `json:"title" validate:"max=100"`
	Bio       string    `json:"bio" validate:"max=500"`
	Skills    []string  `json:"skills" validate:"required,min=1"`
	Phone     string    `json:"phone" validate:"omitempty,valid_phone"`
	PhotoURL  *string   `json:"photo_url,omitempty" validate:"omitempty,https_url"`
	CvURL     *string   `json:"cv_url,omitempty" validate:"omitempty,https_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Create(ctx context.Context, profile *CandidateProfile) error
	Update(ctx context.Context, profile *CandidateProfile) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	CreateProfile(ctx context.Context, profile *CandidateProfile) error
	UpdateProfile(ctx context.Context, profile *CandidateProfile) error
}
