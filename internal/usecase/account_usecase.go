package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type accountUsecase struct {
	accountRepo domain.AccountRepository
}

func NewAccountUsecase(accountRepo domain.AccountRepository) domain.AccountUsecase {
	return &accountUsecase{accountRepo: accountRepo}
}

func (u *accountUsecase) ListAccounts(ctx context.Context, filters map[string]any, page, pageSize int) ([]domain.Account, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.accountRepo.Fetch(ctx, filters, pageSize, offset)
}

func (u *accountUsecase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Account not found")
		}
		return nil, apperror.Internal(err)
	}
	return account, nil
}

func (u *accountUsecase) UpdateAccount(ctx context.Context, id string, fields map[string]any) (*domain.Account, error) {
	if err := u.accountRepo.UpdateFields(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return nil, apperror.BadRequest("No fields to update")
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Account not found")
		case errors.Is(err, domain.ErrDuplicate):
			return nil, apperror.Conflict("Email is already registered")
		default:
			return nil, apperror.Internal(err)
		}
	}
	return u.GetAccount(ctx, id)
}

func (u *accountUsecase) DeleteAccount(ctx context.Context, id string) error {
	if err := u.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Account not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
