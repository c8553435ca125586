package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
)

// execer is implemented by *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// whereClause joins conditions with AND, returning an empty string when there are none
func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conditions, " AND ")
}

// execAffectingOne runs an UPDATE or DELETE and reports ErrNotFound when no row matched
func execAffectingOne(ctx context.Context, db execer, entity, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to modify %s: %w", entity, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s %w", entity, models.ErrNotFound)
	}

	return nil
}

// inPlaceholders returns "?, ?, ?" for n arguments along with the ids as args
func inPlaceholders(ids []int) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ", "), args
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
