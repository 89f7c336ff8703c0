package domain

import (
	"context"
	"time"
)

type Technology struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type TechnologyRepository interface {
	Create(ctx context.Context, tech *Technology) error
	GetByID(ctx context.Context, id int64) (*Technology, error)
	FetchAll(ctx context.Context) ([]Technology, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type TechnologyUsecase interface {
	CreateTechnology(ctx context.Context, tech *Technology) error
	ListTechnologies(ctx context.Context) ([]Technology, error)
	UpdateTechnology(ctx context.Context, id int64, fields map[string]any) (*Technology, error)
	DeleteTechnology(ctx context.Context, id int64) error
}
