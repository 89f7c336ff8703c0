package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type technologyRepo struct {
	db *pgxpool.Pool
}

func NewTechnologyRepository(db *pgxpool.Pool) domain.TechnologyRepository {
	return &technologyRepo{db: db}
}

func (r *technologyRepo) Create(ctx context.Context, tech *domain.Technology) error {
	query := `INSERT INTO technologies (name, category, created_at) VALUES ($1, $2, NOW())
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, tech.Name, tech.Category).Scan(&tech.ID, &tech.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *technologyRepo) GetByID(ctx context.Context, id int64) (*domain.Technology, error) {
	var t domain.Technology
	err := r.db.QueryRow(ctx,
		`SELECT id, name, category, created_at FROM technologies WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Category, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *technologyRepo) FetchAll(ctx context.Context) ([]domain.Technology, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, created_at FROM technologies ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var techs []domain.Technology
	for rows.Next() {
		var t domain.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.CreatedAt); err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

func (r *technologyRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	// Logical names match columns here, no translation table needed.
	set, args, err := buildSetClause(fields, nil, 1)
	if err != nil {
		return err
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE technologies SET %s WHERE id = $%d", set, len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *technologyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
