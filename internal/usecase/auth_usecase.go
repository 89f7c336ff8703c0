package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/password"
	"go-jobboard-backend/pkg/token"

	"github.com/google/uuid"
)

type authUsecase struct {
	accountRepo domain.AccountRepository
	tokens      *token.Manager
}

func NewAuthUsecase(accountRepo domain.AccountRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{accountRepo: accountRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, email, plain, name string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := password.Hash(plain)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         domain.RoleMember,
		PasswordHash: hash,
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Email is already registered")
		}
		return nil, apperror.Internal(err)
	}

	return account, nil
}

func (u *authUsecase) Login(ctx context.Context, email, plain string) (string, *domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a bad password, so login probing cannot
			// distinguish unknown emails.
			return "", nil, apperror.Unauthorized("Invalid email or password")
		}
		return "", nil, apperror.Internal(err)
	}

	if !password.Verify(account.PasswordHash, plain) {
		return "", nil, apperror.Unauthorized("Invalid email or password")
	}

	signed, err := u.tokens.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return signed, account, nil
}

func (u *authUsecase) GetCurrentAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Account not found")
		}
		return nil, apperror.Internal(err)
	}
	return account, nil
}
