package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) GetIDsByAccount(ctx context.Context, accountID string) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT technology_id FROM account_skills WHERE account_id = $1 ORDER BY technology_id`, accountID)
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
	return ids, rows.Err()
}

func (r *skillRepo) GetByAccount(ctx context.Context, accountID string) ([]domain.Technology, error) {
	query := `
		SELECT t.id, t.name, t.category, t.created_at
		FROM account_skills s
		JOIN technologies t ON t.id = s.technology_id
		WHERE s.account_id = $1
		ORDER BY t.category, t.name`

	rows, err := r.db.Query(ctx, query, accountID)
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

// Replace swaps the account's whole skill set in one transaction
// (delete pivot rows, insert the new ones).
func (r *skillRepo) Replace(ctx context.Context, accountID string, technologyIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM account_skills WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}

	for _, techID := range technologyIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO account_skills (account_id, technology_id) VALUES ($1, $2)`, accountID, techID); err != nil {
			return fmt.Errorf("failed to insert skill %d: %w", techID, err)
		}
	}

	return tx.Commit(ctx)
}
