package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/security"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists provisions a local row for a freshly authenticated
// identity-provider user. Idempotent.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err == nil && existing != nil {
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	if user.Role == "" {
		user.Role = domain.RoleCandidate
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// AssignRole changes a user's role. A user may pick candidate or
// enterprise for their own account (the registration role choice); every
// other combination is admin only, and admin changes are audited.
func (u *authUsecase) AssignRole(ctx context.Context, userID string, role string) error {
	ctxUserID, _ := ctx.Value(domain.KeyUserID).(string)
	ctxRole, _ := ctx.Value(domain.KeyUserRole).(string)

	selfSelection := ctxUserID != "" && ctxUserID == userID &&
		(role == domain.RoleCandidate || role == domain.RoleEnterprise)
	if ctxRole != domain.RoleAdmin && !selfSelection {
		return apperror.Forbidden("Only admins can assign roles")
	}

	switch role {
	case domain.RoleCandidate, domain.RoleEnterprise, domain.RoleAdmin:
	default:
		return apperror.BadRequest("Role must be candidate, enterprise, or admin")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	previous := user.Role
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}

	adminID, _ := ctx.Value(domain.KeyUserID).(string)
	security.Default().LogAdminAction(ctx, security.EventRoleModified, adminID, map[string]interface{}{
		"target_user": userID,
		"from":        previous,
		"to":          role,
	})
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
