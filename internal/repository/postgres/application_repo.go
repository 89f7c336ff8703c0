package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, account_id, status, note, created_at)
	          VALUES ($1, $2, $3, $4, NOW())
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, app.JobID, app.AccountID, app.Status, app.Note).
		Scan(&app.ID, &app.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	var a domain.Application
	err := r.db.QueryRow(ctx,
		`SELECT id, job_id, account_id, status, note, created_at FROM applications WHERE id = $1`, id,
	).Scan(&a.ID, &a.JobID, &a.AccountID, &a.Status, &a.Note, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) GetByAccountID(ctx context.Context, accountID string) ([]domain.Application, error) {
	return r.fetch(ctx,
		`SELECT id, job_id, account_id, status, note, created_at FROM applications WHERE account_id = $1 ORDER BY created_at DESC`,
		accountID)
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.fetch(ctx,
		`SELECT id, job_id, account_id, status, note, created_at FROM applications WHERE job_id = $1 ORDER BY created_at DESC`,
		jobID)
}

func (r *applicationRepo) Exists(ctx context.Context, jobID int64, accountID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND account_id = $2)`,
		jobID, accountID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) fetch(ctx context.Context, query string, arg any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.AccountID, &a.Status, &a.Note, &a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
