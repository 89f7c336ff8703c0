package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, accountID string, jobID int64, note string) (*domain.Application, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.applicationRepo.Exists(ctx, jobID, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	var notePtr *string
	if note != "" {
		notePtr = &note
	}

	app := &domain.Application{
		JobID:     jobID,
		AccountID: accountID,
		Status:    domain.ApplicationStatusSubmitted,
		Note:      notePtr,
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

func (u *applicationUsecase) ListByAccount(ctx context.Context, accountID string) ([]domain.Application, error) {
	apps, err := u.applicationRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := u.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// Withdraw deletes an application. Ownership cannot be read off the route
// here since the resource reference is the application id, so the applicant
// id is resolved first and the elevated-or-owner rule applied against it.
func (u *applicationUsecase) Withdraw(ctx context.Context, ident *domain.Identity, id int64) error {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if err := domain.Authorize(domain.PolicyElevatedOrOwner, ident, app.AccountID); err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return apperror.Unauthorized("Authentication required")
		}
		return apperror.Forbidden("You can only withdraw your own applications")
	}

	if err := u.applicationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
