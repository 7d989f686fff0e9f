package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/matching"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/security"
)

type applicationUsecase struct {
	applicationRepo    domain.ApplicationRepository
	interviewRepo      domain.InterviewRepository
	jobRepo            domain.JobOfferRepository
	candidateRepo      domain.CandidateRepository
	companyProfileRepo domain.CompanyProfileRepository
	notificationRepo   domain.NotificationRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	interviewRepo domain.InterviewRepository,
	jobRepo domain.JobOfferRepository,
	candidateRepo domain.CandidateRepository,
	companyProfileRepo domain.CompanyProfileRepository,
	notificationRepo domain.NotificationRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo:    applicationRepo,
		interviewRepo:      interviewRepo,
		jobRepo:            jobRepo,
		candidateRepo:      candidateRepo,
		companyProfileRepo: companyProfileRepo,
		notificationRepo:   notificationRepo,
	}
}

// actor reads the authenticated caller from the request context.
func actor(ctx context.Context) (userID, role string, err error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return "", "", apperror.Unauthorized("User not authenticated")
	}
	role, _ = ctx.Value(domain.KeyUserRole).(string)
	return userID, role, nil
}

// notify inserts an inbox notification best-effort: a failed insert is
// logged and never fails the operation that triggered it.
func (uc *applicationUsecase) notify(ctx context.Context, userID, content string) {
	n := &domain.Notification{UserID: userID, Content: content}
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		logger.Log.Warn("notification insert failed", "user_id", userID, "error", err)
	}
}

// Apply submits a candidate's application to a job offer. The matching
// score is computed here, once, from the candidate's current skills and the
// job's current requirements, and stored immutably.
func (uc *applicationUsecase) Apply(ctx context.Context, userID string, jobOfferID int64) (*domain.Application, error) {
	ctxUserID, role, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Only candidates can apply to job offers")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only apply as yourself")
	}

	profile, err := uc.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Complete your candidate profile before applying")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobOfferID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job offer not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("This job offer is no longer accepting applications")
	}

	// Fast-path duplicate check. The unique constraint remains the
	// authority under concurrency; see the ErrDuplicate mapping below.
	exists, err := uc.applicationRepo.Exists(ctx, jobOfferID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job offer")
	}

	app := &domain.Application{
		JobOfferID:      jobOfferID,
		CandidateUserID: userID,
		Status:          domain.ApplicationStatusPending,
		MatchingScore:   matching.Score(profile.Skills, job.Requirements),
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job offer")
		}
		return nil, apperror.Internal(err)
	}

	if company, err := uc.companyProfileRepo.GetByID(ctx, job.CompanyID); err == nil {
		uc.notify(ctx, company.UserID, fmt.Sprintf("New application received for %q", job.Title))
	}

	return app, nil
}

func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	ctxUserID, _, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own applications")
	}
	apps, err := uc.applicationRepo.GetByCandidateUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// authorizeJobAccess lets the owning enterprise or an admin through and
// returns the loaded job. Every status-changing operation goes through it
// before any mutation.
func (uc *applicationUsecase) authorizeJobAccess(ctx context.Context, jobOfferID int64) (*domain.JobOffer, error) {
	userID, role, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, jobOfferID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job offer not found")
		}
		return nil, apperror.Internal(err)
	}

	if role == domain.RoleAdmin {
		return job, nil
	}
	if role != domain.RoleEnterprise {
		return nil, apperror.Forbidden("Only the owning enterprise or an admin can manage applications")
	}

	company, err := uc.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Forbidden("Enterprise profile not found")
	}
	if company.ID != job.CompanyID {
		return nil, apperror.Forbidden("You do not own this job offer")
	}
	return job, nil
}

// maskForViewer applies the anonymity projection: enterprises see sentinel
// identity fields on anonymized applications; admins and the candidate
// always see real values. The stored row is never modified.
func maskForViewer(ctx context.Context, apps []domain.Application) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleEnterprise {
		return
	}
	for i := range apps {
		if apps[i].Anonymous {
			apps[i].Anonymize()
		}
	}
}

func (uc *applicationUsecase) ListByJobOffer(ctx context.Context, jobOfferID int64) ([]domain.Application, error) {
	if _, err := uc.authorizeJobAccess(ctx, jobOfferID); err != nil {
		return nil, err
	}

	apps, err := uc.applicationRepo.GetByJobOfferID(ctx, jobOfferID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	maskForViewer(ctx, apps)
	return apps, nil
}

func (uc *applicationUsecase) GetDetail(ctx context.Context, applicationID int64) (*domain.ApplicationDetail, error) {
	app, err := uc.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.authorizeJobAccess(ctx, app.JobOfferID); err != nil {
		return nil, err
	}

	detail := &domain.ApplicationDetail{Application: app}
	if iv, err := uc.interviewRepo.GetByApplicationID(ctx, applicationID); err == nil {
		detail.Interview = iv
	}

	masked := []domain.Application{*app}
	maskForViewer(ctx, masked)
	detail.Application = &masked[0]
	return detail, nil
}

func (uc *applicationUsecase) getApplication(ctx context.Context, applicationID int64) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// UpdateStatus accepts or rejects an application. The overwrite is
// unconditional: accept/reject are valid from any state, including flipping
// an already-terminal decision, and every call re-notifies the candidate
// (at-least-once, not deduplicated).
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, applicationID int64, status string) error {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Status must be accepted or rejected")
	}

	app, err := uc.getApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	job, err := uc.authorizeJobAccess(ctx, app.JobOfferID)
	if err != nil {
		return err
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	verb := "accepted"
	if status == domain.ApplicationStatusRejected {
		verb = "rejected"
	}
	uc.notify(ctx, app.CandidateUserID, fmt.Sprintf("Your application for %q has been %s", job.Title, verb))
	return nil
}

// ScheduleInterview creates or reschedules the application's single
// interview and forces the application into interview_scheduled. The
// ordering is fixed: interview write, application write, then the
// notification; if either write fails the candidate is not notified.
func (uc *applicationUsecase) ScheduleInterview(ctx context.Context, applicationID int64, scheduledAt time.Time, meetingLink string) (*domain.Interview, error) {
	if scheduledAt.IsZero() {
		return nil, apperror.BadRequest("Interview date is required")
	}
	if scheduledAt.Before(time.Now()) {
		return nil, apperror.BadRequest("Interview date must be in the future")
	}

	app, err := uc.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := uc.authorizeJobAccess(ctx, app.JobOfferID)
	if err != nil {
		return nil, err
	}

	interview := &domain.Interview{
		ApplicationID: applicationID,
		ScheduledAt:   scheduledAt,
		MeetingLink:   meetingLink,
	}
	if err := uc.interviewRepo.Upsert(ctx, interview); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusInterviewScheduled); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.notify(ctx, app.CandidateUserID, fmt.Sprintf("An interview has been scheduled for your application to %q", job.Title))
	return interview, nil
}

func (uc *applicationUsecase) UpdateInterviewStatus(ctx context.Context, applicationID int64, status string) error {
	if status != domain.InterviewStatusCompleted && status != domain.InterviewStatusCancelled {
		return apperror.BadRequest("Status must be completed or cancelled")
	}

	app, err := uc.getApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	if _, err := uc.authorizeJobAccess(ctx, app.JobOfferID); err != nil {
		return err
	}

	if err := uc.interviewRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("No interview scheduled for this application")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *applicationUsecase) ListAll(ctx context.Context, page, pageSize int) ([]domain.Application, int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	apps, total, err := uc.applicationRepo.Fetch(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return apps, total, nil
}

// ToggleAnonymity flips the anonymity flag (admin only). The flag is
// independent of status and only affects the enterprise read projection.
func (uc *applicationUsecase) ToggleAnonymity(ctx context.Context, applicationID int64) (*domain.Application, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	app, err := uc.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err := uc.applicationRepo.SetAnonymous(ctx, applicationID, !app.Anonymous); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Anonymous = !app.Anonymous

	security.Default().LogAdminAction(ctx, security.EventAnonymityToggled, adminID, map[string]interface{}{
		"application_id": applicationID,
		"anonymous":      app.Anonymous,
	})
	return app, nil
}

// Delete removes an application and its interview (admin only). The
// repository performs both deletes in one transaction.
func (uc *applicationUsecase) Delete(ctx context.Context, applicationID int64) error {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := uc.applicationRepo.Delete(ctx, applicationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	security.Default().LogAdminAction(ctx, security.EventApplicationDeleted, adminID, map[string]interface{}{
		"application_id": applicationID,
	})
	return nil
}

func requireAdmin(ctx context.Context) (string, error) {
	userID, role, err := actor(ctx)
	if err != nil {
		return "", err
	}
	if role != domain.RoleAdmin {
		return "", apperror.Forbidden("Admin access required")
	}
	return userID, nil
}
