package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// jobColumns translates logical update-field names onto physical columns.
// Most names match their column; company is the one renamed field.
var jobColumns = map[string]string{
	"company": "company_name",
}

var jobFilterRules = []filterRule{
	{key: "title", column: "title", mode: filterContains},
	{key: "location", column: "location", mode: filterExact},
	{key: "salary_min", column: "salary_max", mode: filterAtLeast},
	{key: "remote_only", mode: filterFlag, fragment: "remote = TRUE"},
}

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO jobs (title, description, company_name, location, salary_min, salary_max, remote, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		job.Title, job.Description, job.CompanyName, job.Location,
		job.SalaryMin, job.SalaryMax, job.Remote,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertRequirements(ctx, tx, job.ID, job.TechnologyIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByID returns the job enriched with its requirement set.
func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT j.id, j.title, j.description, j.company_name, j.location,
		       j.salary_min, j.salary_max, j.remote, j.created_at, j.updated_at,
		       COALESCE(array_agg(jt.technology_id ORDER BY jt.technology_id)
		                FILTER (WHERE jt.technology_id IS NOT NULL), '{}')
		FROM jobs j
		LEFT JOIN job_technologies jt ON jt.job_id = j.id
		WHERE j.id = $1
		GROUP BY j.id`

	var job domain.Job
	var techIDs []int64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.CompanyName, &job.Location,
		&job.SalaryMin, &job.SalaryMax, &job.Remote, &job.CreatedAt, &job.UpdatedAt,
		pq.Array(&techIDs),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.TechnologyIDs = techIDs
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, filters map[string]any, limit, offset int) ([]domain.Job, int64, error) {
	where, args := compileFilters(filters, jobFilterRules, 1)

	query := `SELECT id, title, description, company_name, location, salary_min, salary_max, remote, created_at, updated_at FROM jobs`
	countQuery := `SELECT COUNT(*) FROM jobs`
	if where != "" {
		query += " WHERE " + where
		countQuery += " WHERE " + where
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// FetchAll returns every job in creation order, used by the recommendation
// assembler. Requirement sets are not included; callers fetch them per job.
func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT id, title, description, company_name, location, salary_min, salary_max, remote, created_at, updated_at
	          FROM jobs ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepo) GetRequirements(ctx context.Context, jobID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT technology_id FROM job_technologies WHERE job_id = $1 ORDER BY technology_id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *jobRepo) ReplaceRequirements(ctx context.Context, jobID int64, technologyIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM job_technologies WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	if err := insertRequirements(ctx, tx, jobID, technologyIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *jobRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	set, args, err := buildSetClause(fields, jobColumns, 1)
	if err != nil {
		return err
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE jobs SET %s, updated_at = NOW() WHERE id = $%d", set, len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.CompanyName, &job.Location,
			&job.SalaryMin, &job.SalaryMax, &job.Remote, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func insertRequirements(ctx context.Context, tx pgx.Tx, jobID int64, technologyIDs []int64) error {
	for _, techID := range technologyIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_technologies (job_id, technology_id) VALUES ($1, $2)`, jobID, techID); err != nil {
			return fmt.Errorf("failed to insert requirement %d: %w", techID, err)
		}
	}
	return nil
}
