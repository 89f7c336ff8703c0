package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	CompanyName string  `json:"company_name" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	SalaryMin   float64 `json:"salary_min" validate:"gt=0"`
	SalaryMax   float64 `json:"salary_max" validate:"gt=0,gtefield=SalaryMin"`
	Remote      bool    `json:"remote"`
	// TechnologyIDs is the job's requirement set. The list-level Fetch does
	// not populate it; GetByID and GetRequirements do.
	TechnologyIDs []int64   `json:"technology_ids,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Fetch applies the recognized job filters (title, location, salary_min,
	// remote_only); a nil or empty filter map means no restriction.
	Fetch(ctx context.Context, filters map[string]any, limit, offset int) ([]Job, int64, error)
	// FetchAll returns every job in creation order, requirements excluded.
	FetchAll(ctx context.Context) ([]Job, error)
	GetRequirements(ctx context.Context, jobID int64) ([]int64, error)
	ReplaceRequirements(ctx context.Context, jobID int64, technologyIDs []int64) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, filters map[string]any, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, id int64, fields map[string]any, technologyIDs []int64) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
}

type RecommendationUsecase interface {
	// RecommendJobs returns the jobs whose requirement set the account's
	// skill set covers, preserving the job list order.
	RecommendJobs(ctx context.Context, accountID string) ([]Job, error)
}
