package domain

import (
	"context"
	"time"
)

// CompanyProfile represents an enterprise account's company profile.
// Job offers belong to a company profile; the owning user is the one
// notified about new applications.
type CompanyProfile struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name" validate:"required,min=2,max=150"`
	LogoURL     *string   `json:"logo_url,omitempty" validate:"omitempty,https_url"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,https_url"`
	Industry    *string   `json:"industry,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*CompanyProfile, error)
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	Create(ctx context.Context, profile *CompanyProfile) error
	Update(ctx context.Context, profile *CompanyProfile) error
}

type CompanyProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*CompanyProfile, error)
	UpsertProfile(ctx context.Context, profile *CompanyProfile) error
	GetPublicProfile(ctx context.Context, id int64) (*CompanyProfile, error)
}
