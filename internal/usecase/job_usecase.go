package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo            domain.JobOfferRepository
	companyProfileRepo domain.CompanyProfileRepository
	validate           *validator.Validate
}

func NewJobOfferUsecase(
	jobRepo domain.JobOfferRepository,
	companyProfileRepo domain.CompanyProfileRepository,
	validate *validator.Validate,
) domain.JobOfferUsecase {
	return &jobUsecase{
		jobRepo:            jobRepo,
		companyProfileRepo: companyProfileRepo,
		validate:           validate,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.JobOffer) error {
	company, err := u.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Create a company profile before publishing job offers")
	}
	job.CompanyID = company.ID
	job.Status = domain.JobStatusActive

	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}
	if job.SalaryMin > job.SalaryMax && job.SalaryMax > 0 {
		return apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobOfferWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job offer not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context, page, pageSize int) ([]domain.JobOfferWithCompany, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	jobs, total, err := u.jobRepo.FetchActive(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) ListJobsByEnterprise(ctx context.Context, userID string, page, pageSize int) ([]domain.JobOffer, int64, error) {
	company, err := u.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, apperror.NotFound("Company profile not found")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	jobs, total, err := u.jobRepo.FetchByCompanyID(ctx, company.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

// ownedJob loads the job and checks the caller owns it (or is admin).
func (u *jobUsecase) ownedJob(ctx context.Context, userID string, id int64) (*domain.JobOffer, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job offer not found")
		}
		return nil, apperror.Internal(err)
	}

	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role == domain.RoleAdmin {
		return job, nil
	}

	company, err := u.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil || company.ID != job.CompanyID {
		return nil, apperror.Forbidden("You do not own this job offer")
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.JobOffer) error {
	existing, err := u.ownedJob(ctx, userID, job.ID)
	if err != nil {
		return err
	}
	job.CompanyID = existing.CompanyID
	if job.Status == "" {
		job.Status = existing.Status
	}
	if job.Status != domain.JobStatusActive && job.Status != domain.JobStatusClosed {
		return apperror.BadRequest("Status must be active or closed")
	}

	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) CloseJob(ctx context.Context, userID string, id int64) error {
	if _, err := u.ownedJob(ctx, userID, id); err != nil {
		return err
	}
	if err := u.jobRepo.UpdateStatus(ctx, id, domain.JobStatusClosed); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteJob removes the offer and cascades to applications and interviews.
// Admin only; enterprises close offers instead of deleting history.
func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job offer not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
