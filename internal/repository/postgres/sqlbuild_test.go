package postgres

import (
	"strings"
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSetClause(t *testing.T) {
	t.Run("Should render one assignment per field with matching args", func(t *testing.T) {
		clause, args, err := buildSetClause(map[string]any{"name": "Ada"}, nil, 1)
		require.NoError(t, err)
		assert.Equal(t, "name = $1", clause)
		assert.Equal(t, []any{"Ada"}, args)
	})

	t.Run("Should number placeholders sequentially from base", func(t *testing.T) {
		fields := map[string]any{
			"email": "ada@example.com",
			"name":  "Ada",
			"role":  "member",
		}
		clause, args, err := buildSetClause(fields, nil, 3)
		require.NoError(t, err)

		// Sorted field order: email, name, role.
		assert.Equal(t, "email = $3, name = $4, role = $5", clause)
		assert.Equal(t, []any{"ada@example.com", "Ada", "member"}, args)
	})

	t.Run("Should translate logical names through the column table", func(t *testing.T) {
		columns := map[string]string{"name": "full_name", "company": "company_name"}
		clause, args, err := buildSetClause(map[string]any{"name": "Ada", "email": "a@b.c"}, columns, 1)
		require.NoError(t, err)
		assert.Equal(t, "email = $1, full_name = $2", clause)
		assert.Len(t, args, 2)
	})

	t.Run("Should bind exactly as many args as fields", func(t *testing.T) {
		fields := map[string]any{"a": 1, "b": 2, "c": 3, "d": 4}
		clause, args, err := buildSetClause(fields, nil, 1)
		require.NoError(t, err)
		assert.Equal(t, len(fields), len(args))
		assert.Equal(t, len(fields), strings.Count(clause, "$"))
	})

	t.Run("Should reject an empty field map", func(t *testing.T) {
		clause, args, err := buildSetClause(map[string]any{}, nil, 1)
		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
		assert.Empty(t, clause)
		assert.Nil(t, args)
	})

	t.Run("Should reject a nil field map", func(t *testing.T) {
		_, _, err := buildSetClause(nil, nil, 1)
		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	})
}

func TestCompileFilters(t *testing.T) {
	rules := []filterRule{
		{key: "title", column: "title", mode: filterContains},
		{key: "location", column: "location", mode: filterExact},
		{key: "salary_min", column: "salary_max", mode: filterAtLeast},
		{key: "remote_only", mode: filterFlag, fragment: "remote = TRUE"},
	}

	t.Run("Should return an empty clause for no filters", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{}, rules, 1)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("Should compile a single exact filter", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{"location": "Berlin"}, rules, 1)
		assert.Equal(t, "location = $1", clause)
		assert.Equal(t, []any{"Berlin"}, args)
	})

	t.Run("Should wrap substring filters for case-insensitive matching", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{"title": "engineer"}, rules, 1)
		assert.Equal(t, "title ILIKE $1", clause)
		assert.Equal(t, []any{"%engineer%"}, args)
	})

	t.Run("Should compile thresholds against the mapped column", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{"salary_min": 50000.0}, rules, 1)
		assert.Equal(t, "salary_max >= $1", clause)
		assert.Equal(t, []any{50000.0}, args)
	})

	t.Run("Should bind nothing for flag filters", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{"remote_only": true}, rules, 1)
		assert.Equal(t, "remote = TRUE", clause)
		assert.Empty(t, args)
	})

	t.Run("Should omit a false flag entirely", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{"remote_only": false}, rules, 1)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("Should AND-join predicates in rule order with continuous numbering", func(t *testing.T) {
		filters := map[string]any{
			"remote_only": true,
			"salary_min":  60000.0,
			"title":       "go",
		}
		clause, args := compileFilters(filters, rules, 1)
		assert.Equal(t, "title ILIKE $1 AND salary_max >= $2 AND remote = TRUE", clause)
		assert.Equal(t, []any{"%go%", 60000.0}, args)
	})

	t.Run("Should ignore unrecognized keys", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{"nope": "x"}, rules, 1)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("Should start numbering at the given base", func(t *testing.T) {
		clause, args := compileFilters(map[string]any{"location": "Remote"}, rules, 4)
		assert.Equal(t, "location = $4", clause)
		assert.Len(t, args, 1)
	})
}
