package domain

import (
	"context"
	"time"
)

const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

type Application struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	AccountID string    `json:"account_id"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByAccountID(ctx context.Context, accountID string) ([]Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	Exists(ctx context.Context, jobID int64, accountID string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, accountID string, jobID int64, note string) (*Application, error)
	ListByAccount(ctx context.Context, accountID string) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	// Withdraw removes an application; the caller must be elevated or the
	// application's owner.
	Withdraw(ctx context.Context, ident *Identity, id int64) error
}
