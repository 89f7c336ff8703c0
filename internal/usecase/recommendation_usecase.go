package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type recommendationUsecase struct {
	accountRepo domain.AccountRepository
	skillRepo   domain.SkillRepository
	jobRepo     domain.JobRepository
}

func NewRecommendationUsecase(
	accountRepo domain.AccountRepository,
	skillRepo domain.SkillRepository,
	jobRepo domain.JobRepository,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		accountRepo: accountRepo,
		skillRepo:   skillRepo,
		jobRepo:     jobRepo,
	}
}

// RecommendJobs returns the jobs whose requirement set the account's skill
// set fully covers, in the job list's original order. A job with no
// requirements matches every account. Read-only and deterministic for an
// unchanged data set.
func (u *recommendationUsecase) RecommendJobs(ctx context.Context, accountID string) ([]domain.Job, error) {
	// The account must exist before any posting retrieval happens.
	if _, err := u.accountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Account not found")
		}
		return nil, apperror.Internal(err)
	}

	skillIDs, err := u.skillRepo.GetIDsByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	skills := domain.NewSkillSet(skillIDs)

	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// The list fetch carries no requirement sets; enrich each job with its
	// own before matching.
	matched := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		required, err := u.jobRepo.GetRequirements(ctx, job.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if !skills.Covers(required) {
			continue
		}
		job.TechnologyIDs = required
		matched = append(matched, job)
	}

	return matched, nil
}
