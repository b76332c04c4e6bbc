package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/cumplia/compliance-api/internal/core/domain"
)

// UpdateBuilder accumulates column assignments for a single-row UPDATE and
// renders the SET clause and the argument list from the same ordered
// sequence. Placeholder numbering and argument position therefore cannot
// drift apart: both passes walk the one slice the Set calls built.
type UpdateBuilder struct {
	columns []string
	values  []any
}

// Set records one column assignment. Call order is preserved; a nil value
// binds SQL NULL.
func (b *UpdateBuilder) Set(column string, value any) {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
}

// Build renders the UPDATE statement and its positional arguments. A
// last_modified assignment is always appended after the caller's columns,
// and the row id is bound last. Returns domain.ErrNoFieldsProvided when no
// column was set: an empty update never reaches the database.
func (b *UpdateBuilder) Build(table, idColumn string, id any) (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, domain.ErrNoFieldsProvided
	}

	assignments := make([]string, 0, len(b.columns)+1)
	for i, col := range b.columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
	}
	assignments = append(assignments, fmt.Sprintf("last_modified = $%d", len(b.columns)+1))

	args := make([]any, 0, len(b.values)+2)
	args = append(args, b.values...)
	args = append(args, time.Now().UTC())
	args = append(args, id)

	sql := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(assignments, ", "), idColumn, len(args),
	)
	return sql, args, nil
}
