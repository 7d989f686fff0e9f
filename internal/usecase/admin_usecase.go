package usecase

import (
	"context"
	"errors"
	"math"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/security"

	"github.com/google/uuid"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository, userRepo domain.UserRepository) domain.AdminUsecase {
	return &adminUsecase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context, page, pageSize int) (*domain.PaginatedResult[domain.User], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := u.userRepo.Fetch(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.PaginatedResult[domain.User]{
		Data:       users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// CreateUser provisions a local user row ahead of their first login.
func (u *adminUsecase) CreateUser(ctx context.Context, email, role string) (*domain.User, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleCandidate, domain.RoleEnterprise, domain.RoleAdmin:
	default:
		return nil, apperror.BadRequest("Role must be candidate, enterprise, or admin")
	}

	if existing, err := u.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.Conflict("A user with this email already exists")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Email: email,
		Role:  role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	security.Default().LogAdminAction(ctx, security.EventRoleModified, adminID, map[string]interface{}{
		"created_user": user.ID,
		"role":         role,
	})
	return user, nil
}
