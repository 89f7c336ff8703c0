package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, validate: validate}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filters map[string]any, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, filters, pageSize, offset)
}

// UpdateJob applies a selective update; technologyIDs, when non-nil, replaces
// the requirement set in the same request.
func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, fields map[string]any, technologyIDs []int64) (*domain.Job, error) {
	if len(fields) == 0 && technologyIDs == nil {
		return nil, apperror.BadRequest("No fields to update")
	}

	if len(fields) > 0 {
		if err := u.jobRepo.UpdateFields(ctx, id, fields); err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyUpdate):
				return nil, apperror.BadRequest("No fields to update")
			case errors.Is(err, domain.ErrNotFound):
				return nil, apperror.NotFound("Job not found")
			default:
				return nil, apperror.Internal(err)
			}
		}
	}

	if technologyIDs != nil {
		if err := u.jobRepo.ReplaceRequirements(ctx, id, technologyIDs); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	return u.GetJob(ctx, id)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
