package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/interviewmail/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTemplateTypeTestRepository(t *testing.T) (*templateTypeRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := setupMockDB(t)
	return NewTemplateTypeRepository(db), mock, cleanup
}

func TestTemplateTypeRepository_GetAll(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "name", "is_active", "created_at", "updated_at"}

	repo, mock, cleanup := setupTemplateTypeTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM template_types WHERE name LIKE ? ORDER BY name LIMIT ? OFFSET ?")).
		WithArgs("%interview%", 20, 0).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "Interview Invitation", true, now, now).
			AddRow(2, "Interview Reminder", true, now, now))

	types, err := repo.GetAll(context.Background(), models.ListFilter{Page: 1, Count: 20, Search: "interview"})

	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Interview Reminder", types[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateTypeRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTemplateTypeTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM template_types WHERE id = ?")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active", "created_at", "updated_at"}))

	templateType, err := repo.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, templateType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateTypeRepository_CountTemplates(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedCount int
		expectedError bool
	}{
		{
			name: "has templates",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM email_templates WHERE template_type_id = ?")).
					WithArgs(2).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			},
			expectedCount: 3,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
					WillReturnError(errors.New("timeout"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTemplateTypeTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			count, err := repo.CountTemplates(context.Background(), 2)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTemplateTypeRepository_UpdateAndDelete(t *testing.T) {
	repo, mock, cleanup := setupTemplateTypeTestRepository(t)
	defer cleanup()

	name := "Offer"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE template_types SET name = ? WHERE id = ?")).
		WithArgs(name, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM template_types WHERE id = ?")).
		WithArgs(1).
		WillReturnError(errors.New("foreign key constraint fails"))

	assert.NoError(t, repo.Update(context.Background(), 1, &models.UpdateTemplateTypeRequest{Name: &name}))
	assert.Error(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
