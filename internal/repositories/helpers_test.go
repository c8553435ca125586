package repositories

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDB creates a mock database shared by the repository tests
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, cleanup
}

func TestWhereClause(t *testing.T) {
	assert.Equal(t, "", whereClause(nil))
	assert.Equal(t, "WHERE a = ?", whereClause([]string{"a = ?"}))
	assert.Equal(t, "WHERE a = ? AND b = ?", whereClause([]string{"a = ?", "b = ?"}))
}

func TestInPlaceholders(t *testing.T) {
	placeholders, args := inPlaceholders([]int{4, 7, 9})

	assert.Equal(t, "?, ?, ?", placeholders)
	assert.Equal(t, []any{4, 7, 9}, args)
}

func TestNullableHelpers(t *testing.T) {
	v := 3
	assert.Nil(t, nullableInt(nil))
	assert.Equal(t, 3, nullableInt(&v))

	assert.Nil(t, intPtr(sql.NullInt64{}))
	got := intPtr(sql.NullInt64{Int64: 5, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, 5, *got)
}
