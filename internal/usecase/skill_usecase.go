package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo   domain.SkillRepository
	accountRepo domain.AccountRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository, accountRepo domain.AccountRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo, accountRepo: accountRepo}
}

func (u *skillUsecase) GetSkills(ctx context.Context, accountID string) ([]domain.Technology, error) {
	if err := u.ensureAccount(ctx, accountID); err != nil {
		return nil, err
	}

	techs, err := u.skillRepo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return techs, nil
}

// ReplaceSkills swaps the account's full skill set and returns the new one.
func (u *skillUsecase) ReplaceSkills(ctx context.Context, accountID string, technologyIDs []int64) ([]domain.Technology, error) {
	if err := u.ensureAccount(ctx, accountID); err != nil {
		return nil, err
	}

	// Dedupe: the pivot table has a composite primary key and a repeated id
	// in the payload should not fail the whole replace.
	unique := make([]int64, 0, len(technologyIDs))
	seen := make(map[int64]struct{}, len(technologyIDs))
	for _, id := range technologyIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if err := u.skillRepo.Replace(ctx, accountID, unique); err != nil {
		return nil, apperror.Internal(err)
	}

	techs, err := u.skillRepo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return techs, nil
}

func (u *skillUsecase) ensureAccount(ctx context.Context, accountID string) error {
	if _, err := u.accountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Account not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
