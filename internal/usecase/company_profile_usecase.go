package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type companyProfileUsecase struct {
	repo     domain.CompanyProfileRepository
	validate *validator.Validate
}

func NewCompanyProfileUsecase(repo domain.CompanyProfileRepository, validate *validator.Validate) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *companyProfileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own company profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpsertProfile creates the profile on first save, updates it afterwards.
func (u *companyProfileUsecase) UpsertProfile(ctx context.Context, profile *domain.CompanyProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleEnterprise {
		return apperror.Forbidden("Only enterprise accounts have a company profile")
	}
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	_, err := u.repo.GetByUserID(ctx, ctxUserID)
	switch {
	case err == nil:
		err = u.repo.Update(ctx, profile)
	case errors.Is(err, domain.ErrNotFound):
		err = u.repo.Create(ctx, profile)
	default:
		return apperror.Internal(err)
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyProfileUsecase) GetPublicProfile(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
