package domain

import (
	"context"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// Fetch applies the recognized account filters (email, name, role);
	// a nil or empty filter map means no restriction.
	Fetch(ctx context.Context, filters map[string]any, limit, offset int) ([]Account, int64, error)
	// UpdateFields performs a selective update touching only the supplied
	// logical fields.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type AccountUsecase interface {
	ListAccounts(ctx context.Context, filters map[string]any, page, pageSize int) ([]Account, int64, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
	UpdateAccount(ctx context.Context, id string, fields map[string]any) (*Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password, name string) (*Account, error)
	Login(ctx context.Context, email, password string) (string, *Account, error)
	GetCurrentAccount(ctx context.Context, id string) (*Account, error)
}
