package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// accountColumns translates the logical update-field names accepted by the
// PATCH endpoint onto physical columns.
var accountColumns = map[string]string{
	"name": "full_name",
}

// accountFilterRules drive the list endpoint's optional search criteria.
var accountFilterRules = []filterRule{
	{key: "email", column: "email", mode: filterExact},
	{key: "name", column: "full_name", mode: filterContains},
	{key: "role", column: "role", mode: filterExact},
}

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (id, email, full_name, role, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	          RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		account.ID, account.Email, account.Name, account.Role, account.PasswordHash,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, email, full_name, role, password_hash, created_at, updated_at
	          FROM accounts WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT id, email, full_name, role, password_hash, created_at, updated_at
	          FROM accounts WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *accountRepo) scanOne(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) Fetch(ctx context.Context, filters map[string]any, limit, offset int) ([]domain.Account, int64, error) {
	where, args := compileFilters(filters, accountFilterRules, 1)

	query := `SELECT id, email, full_name, role, password_hash, created_at, updated_at FROM accounts`
	countQuery := `SELECT COUNT(*) FROM accounts`
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

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (r *accountRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	set, args, err := buildSetClause(fields, accountColumns, 1)
	if err != nil {
		return err
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE accounts SET %s, updated_at = NOW() WHERE id = $%d", set, len(args))

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

func (r *accountRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
