package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleCandidate  = "candidate"
	RoleEnterprise = "enterprise"
	RoleAdmin      = "admin"
)

type User struct {
	ID        string    `json:"id"` // UUID issued by the identity provider
	Email     string    `json:"email"`
	Role      string    `json:"role"` // candidate / enterprise / admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) error
	AssignRole(ctx context.Context, userID string, role string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
