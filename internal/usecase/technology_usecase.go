package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type technologyUsecase struct {
	technologyRepo domain.TechnologyRepository
}

func NewTechnologyUsecase(technologyRepo domain.TechnologyRepository) domain.TechnologyUsecase {
	return &technologyUsecase{technologyRepo: technologyRepo}
}

func (u *technologyUsecase) CreateTechnology(ctx context.Context, tech *domain.Technology) error {
	if err := u.technologyRepo.Create(ctx, tech); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Technology already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *technologyUsecase) ListTechnologies(ctx context.Context) ([]domain.Technology, error) {
	techs, err := u.technologyRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return techs, nil
}

func (u *technologyUsecase) UpdateTechnology(ctx context.Context, id int64, fields map[string]any) (*domain.Technology, error) {
	if err := u.technologyRepo.UpdateFields(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return nil, apperror.BadRequest("No fields to update")
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Technology not found")
		case errors.Is(err, domain.ErrDuplicate):
			return nil, apperror.Conflict("Technology already exists")
		default:
			return nil, apperror.Internal(err)
		}
	}

	tech, err := u.technologyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tech, nil
}

func (u *technologyUsecase) DeleteTechnology(ctx context.Context, id int64) error {
	if err := u.technologyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Technology not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
