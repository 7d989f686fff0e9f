package domain

import "context"

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalUsers        int64       `json:"total_users"`
	UsersByRole       UsersByRole `json:"users_by_role"`
	TotalCompanies    int64       `json:"total_companies"`
	TotalJobOffers    int64       `json:"total_job_offers"`
	ActiveJobOffers   int64       `json:"active_job_offers"`
	TotalApplications int64       `json:"total_applications"`
}

type UsersByRole struct {
	Admin      int64 `json:"admin"`
	Enterprise int64 `json:"enterprise"`
	Candidate  int64 `json:"candidate"`
}

// PaginatedResult wraps list responses with paging metadata.
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
}

type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context, page, pageSize int) (*PaginatedResult[User], error)
	CreateUser(ctx context.Context, email, role string) (*User, error)
}
