package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobOfferID(ctx context.Context, jobOfferID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobOfferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByCandidateUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Application, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobOfferID int64, userID string) (bool, error) {
	args := m.Called(ctx, jobOfferID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) SetAnonymous(ctx context.Context, id int64, anonymous bool) error {
	return m.Called(ctx, id, anonymous).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Upsert(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}
func (m *MockInterviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) (*domain.Interview, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) UpdateStatus(ctx context.Context, applicationID int64, status string) error {
	return m.Called(ctx, applicationID, status).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobOffer) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOffer), args.Error(1)
}
func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobOfferWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOfferWithCompany), args.Error(1)
}
func (m *MockJobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobOfferWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobOfferWithCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.JobOffer, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobOffer), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobOffer) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyProfileRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCompanyProfileRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepo) FetchByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id int64, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// Test fixtures

type applicationMocks struct {
	apps          *MockApplicationRepo
	interviews    *MockInterviewRepo
	jobs          *MockJobRepo
	candidates    *MockCandidateRepo
	companies     *MockCompanyProfileRepo
	notifications *MockNotificationRepo
}

func newApplicationUsecase() (domain.ApplicationUsecase, *applicationMocks) {
	m := &applicationMocks{
		apps:          new(MockApplicationRepo),
		interviews:    new(MockInterviewRepo),
		jobs:          new(MockJobRepo),
		candidates:    new(MockCandidateRepo),
		companies:     new(MockCompanyProfileRepo),
		notifications: new(MockNotificationRepo),
	}
	uc := usecase.NewApplicationUsecase(m.apps, m.interviews, m.jobs, m.candidates, m.companies, m.notifications)
	return uc, m
}

func authedCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}

func activeJob(id, companyID int64, requirements ...string) *domain.JobOffer {
	return &domain.JobOffer{
		ID:           id,
		CompanyID:    companyID,
		Title:        "Backend Engineer",
		Requirements: requirements,
		Status:       domain.JobStatusActive,
	}
}

func assertStatusCode(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestApply(t *testing.T) {
	t.Run("computes the matching score once at apply time", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("cand-1", domain.RoleCandidate)

		m.candidates.On("GetByUserID", mock.Anything, "cand-1").Return(&domain.CandidateProfile{
			UserID: "cand-1",
			Skills: []string{"Go", "SQL"},
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go", "kubernetes"), nil)
		m.apps.On("Exists", mock.Anything, int64(10), "cand-1").Return(false, nil)
		m.apps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)
		m.companies.On("GetByID", mock.Anything, int64(7)).Return(&domain.CompanyProfile{ID: 7, UserID: "ent-1"}, nil)
		m.notifications.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

		app, err := uc.Apply(ctx, "cand-1", 10)

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, 50, app.MatchingScore) // "go" matched, "kubernetes" not
		m.apps.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
			return a.MatchingScore == 50 && a.CandidateUserID == "cand-1" && a.JobOfferID == 10
		}))
		m.notifications.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == "ent-1"
		}))
	})

	t.Run("rejects a second application to the same job offer", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("cand-1", domain.RoleCandidate)

		m.candidates.On("GetByUserID", mock.Anything, "cand-1").Return(&domain.CandidateProfile{
			UserID: "cand-1",
			Skills: []string{"Go"},
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.apps.On("Exists", mock.Anything, int64(10), "cand-1").Return(true, nil)

		_, err := uc.Apply(ctx, "cand-1", 10)

		assertStatusCode(t, err, 409)
		m.apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps a storage-level duplicate to conflict", func(t *testing.T) {
		// Two concurrent applies can both pass the Exists check; the
		// unique constraint is the authority.
		uc, m := newApplicationUsecase()
		ctx := authedCtx("cand-1", domain.RoleCandidate)

		m.candidates.On("GetByUserID", mock.Anything, "cand-1").Return(&domain.CandidateProfile{
			UserID: "cand-1",
			Skills: []string{"Go"},
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.apps.On("Exists", mock.Anything, int64(10), "cand-1").Return(false, nil)
		m.apps.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		_, err := uc.Apply(ctx, "cand-1", 10)

		assertStatusCode(t, err, 409)
	})

	t.Run("rejects applications to closed job offers", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("cand-1", domain.RoleCandidate)

		job := activeJob(10, 7, "go")
		job.Status = domain.JobStatusClosed
		m.candidates.On("GetByUserID", mock.Anything, "cand-1").Return(&domain.CandidateProfile{
			UserID: "cand-1",
			Skills: []string{"Go"},
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(job, nil)

		_, err := uc.Apply(ctx, "cand-1", 10)

		assertStatusCode(t, err, 400)
	})

	t.Run("requires a candidate profile", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("cand-1", domain.RoleCandidate)

		m.candidates.On("GetByUserID", mock.Anything, "cand-1").Return(nil, nil)

		_, err := uc.Apply(ctx, "cand-1", 10)

		assertStatusCode(t, err, 404)
	})

	t.Run("only candidates can apply", func(t *testing.T) {
		uc, _ := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)

		_, err := uc.Apply(ctx, "ent-1", 10)

		assertStatusCode(t, err, 403)
	})

	t.Run("still succeeds when the notification insert fails", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("cand-1", domain.RoleCandidate)

		m.candidates.On("GetByUserID", mock.Anything, "cand-1").Return(&domain.CandidateProfile{
			UserID: "cand-1",
			Skills: []string{"Go"},
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.apps.On("Exists", mock.Anything, int64(10), "cand-1").Return(false, nil)
		m.apps.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.companies.On("GetByID", mock.Anything, int64(7)).Return(&domain.CompanyProfile{ID: 7, UserID: "ent-1"}, nil)
		m.notifications.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		app, err := uc.Apply(ctx, "cand-1", 10)

		assert.NoError(t, err)
		assert.NotNil(t, app)
	})
}

func TestUpdateStatus(t *testing.T) {
	setup := func(m *applicationMocks) {
		m.apps.On("GetByID", mock.Anything, int64(5)).Return(&domain.Application{
			ID:              5,
			JobOfferID:      10,
			CandidateUserID: "cand-1",
			Status:          domain.ApplicationStatusPending,
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.companies.On("GetByUserID", mock.Anything, "ent-1").Return(&domain.CompanyProfile{ID: 7, UserID: "ent-1"}, nil)
	}

	t.Run("accepts and notifies the candidate", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)
		setup(m)
		m.apps.On("UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusAccepted).Return(nil)
		m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := uc.UpdateStatus(ctx, 5, domain.ApplicationStatusAccepted)

		assert.NoError(t, err)
		m.notifications.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == "cand-1"
		}))
	})

	t.Run("overwrites unconditionally and re-notifies on every call", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)
		setup(m)
		m.apps.On("UpdateStatus", mock.Anything, int64(5), mock.Anything).Return(nil)
		m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, uc.UpdateStatus(ctx, 5, domain.ApplicationStatusAccepted))
		assert.NoError(t, uc.UpdateStatus(ctx, 5, domain.ApplicationStatusRejected))
		assert.NoError(t, uc.UpdateStatus(ctx, 5, domain.ApplicationStatusAccepted))

		m.notifications.AssertNumberOfCalls(t, "Create", 3)
	})

	t.Run("rejects statuses outside accepted/rejected", func(t *testing.T) {
		uc, _ := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)

		err := uc.UpdateStatus(ctx, 5, domain.ApplicationStatusInterviewScheduled)

		assertStatusCode(t, err, 400)
	})

	t.Run("rejects an enterprise that does not own the job offer", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-2", domain.RoleEnterprise)

		m.apps.On("GetByID", mock.Anything, int64(5)).Return(&domain.Application{
			ID: 5, JobOfferID: 10, CandidateUserID: "cand-1",
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.companies.On("GetByUserID", mock.Anything, "ent-2").Return(&domain.CompanyProfile{ID: 99, UserID: "ent-2"}, nil)

		err := uc.UpdateStatus(ctx, 5, domain.ApplicationStatusAccepted)

		assertStatusCode(t, err, 403)
	})

	t.Run("does not notify when the write fails", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)
		setup(m)
		m.apps.On("UpdateStatus", mock.Anything, int64(5), mock.Anything).Return(assert.AnError)

		err := uc.UpdateStatus(ctx, 5, domain.ApplicationStatusAccepted)

		assert.Error(t, err)
		m.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestScheduleInterview(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	setup := func(m *applicationMocks) {
		m.apps.On("GetByID", mock.Anything, int64(5)).Return(&domain.Application{
			ID:              5,
			JobOfferID:      10,
			CandidateUserID: "cand-1",
			Status:          domain.ApplicationStatusPending,
		}, nil)
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.companies.On("GetByUserID", mock.Anything, "ent-1").Return(&domain.CompanyProfile{ID: 7, UserID: "ent-1"}, nil)
	}

	t.Run("schedules, moves the application, and notifies", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)
		setup(m)
		m.interviews.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		m.apps.On("UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusInterviewScheduled).Return(nil)
		m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

		interview, err := uc.ScheduleInterview(ctx, 5, future, "https://meet.example.com/abc")

		assert.NoError(t, err)
		assert.Equal(t, int64(5), interview.ApplicationID)
		m.apps.AssertCalled(t, "UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusInterviewScheduled)
		m.notifications.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == "cand-1"
		}))
	})

	t.Run("rescheduling goes through the same upsert", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)
		setup(m)
		m.interviews.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		m.apps.On("UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusInterviewScheduled).Return(nil)
		m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.ScheduleInterview(ctx, 5, future, "https://meet.example.com/abc")
		assert.NoError(t, err)
		_, err = uc.ScheduleInterview(ctx, 5, future.Add(24*time.Hour), "https://meet.example.com/new")
		assert.NoError(t, err)

		m.interviews.AssertNumberOfCalls(t, "Upsert", 2)
	})

	t.Run("rejects past dates", func(t *testing.T) {
		uc, _ := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)

		_, err := uc.ScheduleInterview(ctx, 5, time.Now().Add(-time.Hour), "")

		assertStatusCode(t, err, 400)
	})

	t.Run("does not notify when the interview write fails", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)
		setup(m)
		m.interviews.On("Upsert", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := uc.ScheduleInterview(ctx, 5, future, "")

		assert.Error(t, err)
		m.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAnonymityProjection(t *testing.T) {
	name := "Jane Doe"
	email := "jane@example.com"
	phone := "+33123456789"

	stored := func() []domain.Application {
		return []domain.Application{{
			ID:              5,
			JobOfferID:      10,
			CandidateUserID: "cand-1",
			Anonymous:       true,
			CandidateName:   &name,
			CandidateEmail:  &email,
			CandidatePhone:  &phone,
		}}
	}

	t.Run("enterprise sees sentinel identity on anonymized applications", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)

		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.companies.On("GetByUserID", mock.Anything, "ent-1").Return(&domain.CompanyProfile{ID: 7, UserID: "ent-1"}, nil)
		m.apps.On("GetByJobOfferID", mock.Anything, int64(10)).Return(stored(), nil)

		apps, err := uc.ListByJobOffer(ctx, 10)

		assert.NoError(t, err)
		assert.Nil(t, apps[0].CandidateName)
		assert.Nil(t, apps[0].CandidatePhone)
		assert.Equal(t, domain.AnonymousEmail, *apps[0].CandidateEmail)
	})

	t.Run("admin always sees real identity", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("adm-1", domain.RoleAdmin)

		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.apps.On("GetByJobOfferID", mock.Anything, int64(10)).Return(stored(), nil)

		apps, err := uc.ListByJobOffer(ctx, 10)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", *apps[0].CandidateName)
		assert.Equal(t, "jane@example.com", *apps[0].CandidateEmail)
	})

	t.Run("non-anonymous applications are untouched for enterprises", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)

		visible := stored()
		visible[0].Anonymous = false
		m.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(10, 7, "go"), nil)
		m.companies.On("GetByUserID", mock.Anything, "ent-1").Return(&domain.CompanyProfile{ID: 7, UserID: "ent-1"}, nil)
		m.apps.On("GetByJobOfferID", mock.Anything, int64(10)).Return(visible, nil)

		apps, err := uc.ListByJobOffer(ctx, 10)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", *apps[0].CandidateName)
	})
}

func TestAdminOperations(t *testing.T) {
	t.Run("toggle anonymity flips the flag", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("adm-1", domain.RoleAdmin)

		m.apps.On("GetByID", mock.Anything, int64(5)).Return(&domain.Application{ID: 5, Anonymous: false}, nil)
		m.apps.On("SetAnonymous", mock.Anything, int64(5), true).Return(nil)

		app, err := uc.ToggleAnonymity(ctx, 5)

		assert.NoError(t, err)
		assert.True(t, app.Anonymous)
	})

	t.Run("toggle anonymity requires admin", func(t *testing.T) {
		uc, _ := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)

		_, err := uc.ToggleAnonymity(ctx, 5)

		assertStatusCode(t, err, 403)
	})

	t.Run("delete requires admin", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("cand-1", domain.RoleCandidate)

		err := uc.Delete(ctx, 5)

		assertStatusCode(t, err, 403)
		m.apps.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete removes the application", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("adm-1", domain.RoleAdmin)

		m.apps.On("Delete", mock.Anything, int64(5)).Return(nil)

		assert.NoError(t, uc.Delete(ctx, 5))
		m.apps.AssertCalled(t, "Delete", mock.Anything, int64(5))
	})

	t.Run("delete of a missing application is not found", func(t *testing.T) {
		uc, m := newApplicationUsecase()
		ctx := authedCtx("adm-1", domain.RoleAdmin)

		m.apps.On("Delete", mock.Anything, int64(5)).Return(domain.ErrNotFound)

		err := uc.Delete(ctx, 5)

		assertStatusCode(t, err, 404)
	})

	t.Run("list all requires admin", func(t *testing.T) {
		uc, _ := newApplicationUsecase()
		ctx := authedCtx("ent-1", domain.RoleEnterprise)

		_, _, err := uc.ListAll(ctx, 1, 20)

		assertStatusCode(t, err, 403)
	})
}
