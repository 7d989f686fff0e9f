package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestCandidateIDOR(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, newValidator())

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		_, err := uc.GetProfile(ctx, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when Context UserID is nil", func(t *testing.T) {
		ctx := context.Background() // keys missing
		_, err := uc.GetProfile(ctx, "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Admin may read any candidate profile", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "admin1")
		ctx = context.WithValue(ctx, domain.KeyUserRole, domain.RoleAdmin)
		mockRepo.On("GetByUserID", mock.Anything, "user2").Return(&domain.CandidateProfile{
			UserID:   "user2",
			FullName: "Jane Doe",
			Skills:   []string{"Go"},
		}, nil)

		profile, err := uc.GetProfile(ctx, "user2")
		assert.NoError(t, err)
		assert.Equal(t, "user2", profile.UserID)
	})
}

func TestAuthPrivilege(t *testing.T) {
	t.Run("Should fail if caller changes another user's role", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		ctx = context.WithValue(ctx, domain.KeyUserRole, domain.RoleCandidate)
		err := uc.AssignRole(ctx, "target_user", domain.RoleEnterprise)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can assign roles")
	})

	t.Run("Should fail if caller self-assigns admin", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		ctx = context.WithValue(ctx, domain.KeyUserRole, domain.RoleCandidate)
		err := uc.AssignRole(ctx, "user1", domain.RoleAdmin)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can assign roles")
	})

	t.Run("Should fail safe if role is nil", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		ctx := context.Background()
		err := uc.AssignRole(ctx, "target_user", domain.RoleAdmin)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can assign roles")
	})

	t.Run("User may pick their own account type", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		ctx = context.WithValue(ctx, domain.KeyUserRole, domain.RoleCandidate)

		mockRepo.On("GetByID", mock.Anything, "user1").Return(&domain.User{
			ID: "user1", Role: domain.RoleCandidate,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "user1" && u.Role == domain.RoleEnterprise
		})).Return(nil)

		err := uc.AssignRole(ctx, "user1", domain.RoleEnterprise)
		assert.NoError(t, err)
	})
}

func TestCandidateUpdateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, newValidator())

	t.Run("Should fail if required fields are missing", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.CandidateProfile{
			// Missing FullName and Skills
		}
		err := uc.UpdateProfile(ctx, profile)
		assert.Error(t, err)
	})

	t.Run("Should force UserID from context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.CandidateProfile{
			UserID:   "hacker_try",
			FullName: "Jane Doe",
			Skills:   []string{"Go"},
		}

		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
			return p.UserID == "user1"
		})).Return(nil)

		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
		assert.Equal(t, "user1", profile.UserID)
	})
}
