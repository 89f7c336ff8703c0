package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/password"
	"go-jobboard-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) Fetch(ctx context.Context, filters map[string]any, limit, offset int) ([]domain.Account, int64, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockAccountRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) GetIDsByAccount(ctx context.Context, accountID string) ([]int64, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSkillRepo) GetByAccount(ctx context.Context, accountID string) ([]domain.Technology, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Technology), args.Error(1)
}

func (m *MockSkillRepo) Replace(ctx context.Context, accountID string, technologyIDs []int64) error {
	return m.Called(ctx, accountID, technologyIDs).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, filters map[string]any, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetRequirements(ctx context.Context, jobID int64) ([]int64, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockJobRepo) ReplaceRequirements(ctx context.Context, jobID int64, technologyIDs []int64) error {
	return m.Called(ctx, jobID, technologyIDs).Error(0)
}

func (m *MockJobRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

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

func (m *MockApplicationRepo) GetByAccountID(ctx context.Context, accountID string) ([]domain.Application, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, jobID int64, accountID string) (bool, error) {
	args := m.Called(ctx, jobID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	return appErr.Code
}

func TestRecommendJobs(t *testing.T) {
	ctx := context.Background()
	account := &domain.Account{ID: "acct-1", Role: domain.RoleMember}

	t.Run("Should return matches in posting order", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		skillRepo := new(MockSkillRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewRecommendationUsecase(accountRepo, skillRepo, jobRepo)

		accountRepo.On("GetByID", ctx, "acct-1").Return(account, nil)
		skillRepo.On("GetIDsByAccount", ctx, "acct-1").Return([]int64{1, 2, 3}, nil)
		jobRepo.On("FetchAll", ctx).Return([]domain.Job{
			{ID: 10, Title: "Backend"},
			{ID: 11, Title: "Frontend"},
			{ID: 12, Title: "Anything"},
		}, nil)
		jobRepo.On("GetRequirements", ctx, int64(10)).Return([]int64{1, 2}, nil)
		jobRepo.On("GetRequirements", ctx, int64(11)).Return([]int64{4}, nil)
		jobRepo.On("GetRequirements", ctx, int64(12)).Return([]int64{}, nil)

		jobs, err := uc.RecommendJobs(ctx, "acct-1")
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, int64(10), jobs[0].ID)
		assert.Equal(t, int64(12), jobs[1].ID)
		assert.Equal(t, []int64{1, 2}, jobs[0].TechnologyIDs)
	})

	t.Run("Should include every job for the fully skilled", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		skillRepo := new(MockSkillRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewRecommendationUsecase(accountRepo, skillRepo, jobRepo)

		accountRepo.On("GetByID", ctx, "acct-1").Return(account, nil)
		skillRepo.On("GetIDsByAccount", ctx, "acct-1").Return([]int64{1, 2}, nil)
		jobRepo.On("FetchAll", ctx).Return([]domain.Job{{ID: 1}, {ID: 2}}, nil)
		jobRepo.On("GetRequirements", ctx, int64(1)).Return([]int64{1}, nil)
		jobRepo.On("GetRequirements", ctx, int64(2)).Return([]int64{2, 1}, nil)

		jobs, err := uc.RecommendJobs(ctx, "acct-1")
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("Should match requirement-free jobs for a skill-less account", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		skillRepo := new(MockSkillRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewRecommendationUsecase(accountRepo, skillRepo, jobRepo)

		accountRepo.On("GetByID", ctx, "acct-1").Return(account, nil)
		skillRepo.On("GetIDsByAccount", ctx, "acct-1").Return([]int64{}, nil)
		jobRepo.On("FetchAll", ctx).Return([]domain.Job{{ID: 1}, {ID: 2}}, nil)
		jobRepo.On("GetRequirements", ctx, int64(1)).Return([]int64{}, nil)
		jobRepo.On("GetRequirements", ctx, int64(2)).Return([]int64{7}, nil)

		jobs, err := uc.RecommendJobs(ctx, "acct-1")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, int64(1), jobs[0].ID)
	})

	t.Run("Should fail on an unknown account before touching jobs", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		skillRepo := new(MockSkillRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewRecommendationUsecase(accountRepo, skillRepo, jobRepo)

		accountRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.RecommendJobs(ctx, "ghost")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		jobRepo.AssertNotCalled(t, "FetchAll", mock.Anything)
		skillRepo.AssertNotCalled(t, "GetIDsByAccount", mock.Anything, mock.Anything)
	})
}

func TestApplicationApply(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 5, Title: "Backend"}

	t.Run("Should create a submitted application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, int64(5)).Return(job, nil)
		appRepo.On("Exists", ctx, int64(5), "acct-1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Apply(ctx, "acct-1", 5, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
		assert.Nil(t, app.Note)
	})

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, int64(5)).Return(job, nil)
		appRepo.On("Exists", ctx, int64(5), "acct-1").Return(true, nil)

		_, err := uc.Apply(ctx, "acct-1", 5, "")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should surface a race-lost duplicate as conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, int64(5)).Return(job, nil)
		appRepo.On("Exists", ctx, int64(5), "acct-1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		_, err := uc.Apply(ctx, "acct-1", 5, "")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	})

	t.Run("Should reject applications to unknown jobs", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, "acct-1", 404, "")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestApplicationWithdraw(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{ID: 9, JobID: 5, AccountID: "acct-1"}

	t.Run("Should let the applicant withdraw", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))

		appRepo.On("GetByID", ctx, int64(9)).Return(app, nil)
		appRepo.On("Delete", ctx, int64(9)).Return(nil)

		ident := &domain.Identity{SubjectID: "acct-1", Role: domain.RoleMember}
		assert.NoError(t, uc.Withdraw(ctx, ident, 9))
	})

	t.Run("Should let an admin withdraw anyone's application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))

		appRepo.On("GetByID", ctx, int64(9)).Return(app, nil)
		appRepo.On("Delete", ctx, int64(9)).Return(nil)

		ident := &domain.Identity{SubjectID: "admin-1", Role: domain.RoleAdmin}
		assert.NoError(t, uc.Withdraw(ctx, ident, 9))
	})

	t.Run("Should forbid a non-owner member", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))

		appRepo.On("GetByID", ctx, int64(9)).Return(app, nil)

		ident := &domain.Identity{SubjectID: "acct-2", Role: domain.RoleMember}
		err := uc.Withdraw(ctx, ident, 9)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should demand authentication for anonymous callers", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))

		appRepo.On("GetByID", ctx, int64(9)).Return(app, nil)

		err := uc.Withdraw(ctx, nil, 9)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
	})
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an inverted salary range", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, validator.New())

		job := &domain.Job{
			Title: "Backend", Description: "Go services", CompanyName: "Acme",
			Location: "Berlin", SalaryMin: 90000, SalaryMax: 50000,
		}
		err := uc.CreateJob(ctx, job)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should persist a valid job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, validator.New())

		job := &domain.Job{
			Title: "Backend", Description: "Go services", CompanyName: "Acme",
			Location: "Berlin", SalaryMin: 50000, SalaryMax: 90000,
		}
		jobRepo.On("Create", ctx, job).Return(nil)

		assert.NoError(t, uc.CreateJob(ctx, job))
		jobRepo.AssertExpectations(t)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a request with nothing to change", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, validator.New())

		_, err := uc.UpdateJob(ctx, 5, map[string]any{}, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		jobRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should update fields and return the enriched job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, validator.New())

		fields := map[string]any{"title": "Senior Backend"}
		jobRepo.On("UpdateFields", ctx, int64(5), fields).Return(nil)
		jobRepo.On("GetByID", ctx, int64(5)).Return(&domain.Job{ID: 5, Title: "Senior Backend"}, nil)

		job, err := uc.UpdateJob(ctx, 5, fields, nil)
		require.NoError(t, err)
		assert.Equal(t, "Senior Backend", job.Title)
	})

	t.Run("Should replace requirements without touching columns", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, validator.New())

		jobRepo.On("ReplaceRequirements", ctx, int64(5), []int64{1, 2}).Return(nil)
		jobRepo.On("GetByID", ctx, int64(5)).Return(&domain.Job{ID: 5, TechnologyIDs: []int64{1, 2}}, nil)

		job, err := uc.UpdateJob(ctx, 5, nil, []int64{1, 2})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, job.TechnologyIDs)
		jobRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should map an unknown job to not found", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, validator.New())

		jobRepo.On("UpdateFields", ctx, int64(404), mock.Anything).Return(domain.ErrNotFound)

		_, err := uc.UpdateJob(ctx, 404, map[string]any{"title": "x"}, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestReplaceSkills(t *testing.T) {
	ctx := context.Background()
	account := &domain.Account{ID: "acct-1", Role: domain.RoleMember}

	t.Run("Should dedupe ids before the replace", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		accountRepo := new(MockAccountRepo)
		uc := usecase.NewSkillUsecase(skillRepo, accountRepo)

		accountRepo.On("GetByID", ctx, "acct-1").Return(account, nil)
		skillRepo.On("Replace", ctx, "acct-1", []int64{1, 2}).Return(nil)
		skillRepo.On("GetByAccount", ctx, "acct-1").Return([]domain.Technology{{ID: 1}, {ID: 2}}, nil)

		techs, err := uc.ReplaceSkills(ctx, "acct-1", []int64{1, 2, 1, 2})
		require.NoError(t, err)
		assert.Len(t, techs, 2)
		skillRepo.AssertCalled(t, "Replace", ctx, "acct-1", []int64{1, 2})
	})

	t.Run("Should refuse an unknown account", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		accountRepo := new(MockAccountRepo)
		uc := usecase.NewSkillUsecase(skillRepo, accountRepo)

		accountRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.ReplaceSkills(ctx, "ghost", []int64{1})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		skillRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase(t *testing.T) {
	ctx := context.Background()
	tokens := token.NewManager("test-secret", time.Hour)

	t.Run("Should register with member role and normalized email", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accountRepo, tokens)

		accountRepo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Return(nil)

		account, err := uc.Register(ctx, "  Ada@Example.COM ", "s3cretpass", "Ada")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", account.Email)
		assert.Equal(t, domain.RoleMember, account.Role)
		assert.NotEmpty(t, account.ID)
		assert.NotEqual(t, "s3cretpass", account.PasswordHash)
	})

	t.Run("Should map a duplicate email to conflict", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accountRepo, tokens)

		accountRepo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Return(domain.ErrDuplicate)

		_, err := uc.Register(ctx, "ada@example.com", "s3cretpass", "Ada")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	})

	t.Run("Should give the same rejection for unknown email and bad password", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accountRepo, tokens)

		hash, err := password.Hash("rightpassword")
		require.NoError(t, err)
		account := &domain.Account{ID: "acct-1", Email: "ada@example.com", Role: domain.RoleMember, PasswordHash: hash}

		accountRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
		accountRepo.On("GetByEmail", ctx, "ada@example.com").Return(account, nil)

		_, _, unknownErr := uc.Login(ctx, "ghost@example.com", "whatever")
		require.Error(t, unknownErr)
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, unknownErr))

		_, _, badPassErr := uc.Login(ctx, "ada@example.com", "wrongpassword")
		require.Error(t, badPassErr)
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, badPassErr))

		assert.Equal(t, unknownErr.Error(), badPassErr.Error())
	})

	t.Run("Should issue a parseable token on login", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accountRepo, tokens)

		hash, err := password.Hash("rightpassword")
		require.NoError(t, err)
		account := &domain.Account{ID: "acct-1", Email: "ada@example.com", Role: domain.RoleMember, PasswordHash: hash}
		accountRepo.On("GetByEmail", ctx, "ada@example.com").Return(account, nil)

		signed, got, err := uc.Login(ctx, "Ada@Example.com", "rightpassword")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)

		claims, err := tokens.Parse(signed)
		require.NoError(t, err)
		assert.Equal(t, "acct-1", claims.SubjectID)
		assert.Equal(t, domain.RoleMember, claims.Role)
	})
}
