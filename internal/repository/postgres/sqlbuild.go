package postgres

import (
	"fmt"
	"sort"
	"strings"

	"go-jobboard-backend/internal/domain"
)

// buildSetClause turns a partial field-update map into a parameterized SET
// clause plus the matching argument list. Placeholders are numbered
// sequentially starting at base; the caller appends its own arguments (the
// WHERE id, typically) after the returned list so the numbering stays
// continuous. columns translates logical field names to column names; fields
// absent from the table use the logical name verbatim. Field names are applied
// in sorted order so the rendered SQL is deterministic.
//
// An empty field map returns domain.ErrEmptyUpdate: there is nothing to
// update and silently running "UPDATE ... SET" would be invalid SQL anyway.
func buildSetClause(fields map[string]any, columns map[string]string, base int) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ErrEmptyUpdate
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	args := make([]any, 0, len(names))
	for i, name := range names {
		col := name
		if mapped, ok := columns[name]; ok {
			col = mapped
		}
		parts = append(parts, fmt.Sprintf("%s = $%d", col, base+i))
		args = append(args, fields[name])
	}
	return strings.Join(parts, ", "), args, nil
}

// filterMode selects how a recognized filter key compiles into its predicate.
type filterMode int

const (
	filterExact    filterMode = iota // column = $n
	filterContains                   // case-insensitive substring, column ILIKE $n
	filterAtLeast                    // numeric threshold, column >= $n
	filterFlag                       // boolean gate: emit the fixed fragment, bind nothing
)

// filterRule maps one filter key onto a column and comparison mode. For
// filterFlag the fragment carries the complete predicate.
type filterRule struct {
	key      string
	column   string
	mode     filterMode
	fragment string
}

// compileFilters walks the rule table in declared order and appends one
// predicate per present key, AND-joined, with placeholders numbered from
// base. Keys are assumed pre-validated by the request schema; flag rules bind
// no parameter, and a false flag emits nothing. An empty clause means the
// caller must omit the WHERE keyword entirely.
func compileFilters(filters map[string]any, rules []filterRule, base int) (string, []any) {
	var parts []string
	var args []any

	n := base
	for _, rule := range rules {
		value, ok := filters[rule.key]
		if !ok {
			continue
		}
		switch rule.mode {
		case filterExact:
			parts = append(parts, fmt.Sprintf("%s = $%d", rule.column, n))
			args = append(args, value)
			n++
		case filterContains:
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", rule.column, n))
			args = append(args, "%"+fmt.Sprint(value)+"%")
			n++
		case filterAtLeast:
			parts = append(parts, fmt.Sprintf("%s >= $%d", rule.column, n))
			args = append(args, value)
			n++
		case filterFlag:
			if enabled, _ := value.(bool); enabled {
				parts = append(parts, rule.fragment)
			}
		}
	}
	return strings.Join(parts, " AND "), args
}
