package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/interviewmail/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEmailTemplateTestRepository(t *testing.T) (*emailTemplateRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := setupMockDB(t)
	return NewEmailTemplateRepository(db), mock, cleanup
}

func TestEmailTemplateRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupEmailTemplateTestRepository(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO email_templates (name, template_type_id, subject, body, is_active)")).
		WithArgs("Invite", 1, "Interview for {{position}}", "Hi {{name}}", true).
		WillReturnResult(sqlmock.NewResult(12, 1))

	template := &models.EmailTemplate{
		Name:           "Invite",
		TemplateTypeID: 1,
		Subject:        "Interview for {{position}}",
		Body:           "Hi {{name}}",
		IsActive:       true,
	}
	require.NoError(t, repo.Create(context.Background(), template))
	assert.Equal(t, 12, template.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateRepository_GetByID(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "name", "template_type_id", "type_name", "subject", "body", "is_active", "created_at", "updated_at"}

	repo, mock, cleanup := setupEmailTemplateTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("JOIN template_types tt ON tt.id = et.template_type_id WHERE et.id = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, "Invite", 1, "Interview Invitation", "Subj", "Body", true, now, now))

	template, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Interview Invitation", template.TemplateTypeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateRepository_GetTemplateByID(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expected      *models.EmailTemplateParts
		expectedError error
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT subject, body FROM email_templates WHERE id = ?")).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"subject", "body"}).AddRow("Hi {{name}}", "<p>{{position}}</p>"))
			},
			expected: &models.EmailTemplateParts{Subject: "Hi {{name}}", Body: "<p>{{position}}</p>"},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT subject, body FROM email_templates")).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"subject", "body"}))
			},
			expectedError: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmailTemplateTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			parts, err := repo.GetTemplateByID(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, parts)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmailTemplateRepository_GetAll(t *testing.T) {
	active := true
	columns := []string{"id", "name", "template_type_id", "type_name", "subject", "is_active"}

	repo, mock, cleanup := setupEmailTemplateTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE et.template_type_id = ? AND et.is_active = ? AND (et.name LIKE ? OR et.subject LIKE ? OR et.body LIKE ?) ORDER BY tt.name, et.name LIMIT ? OFFSET ?")).
		WithArgs(2, true, "%go%", "%go%", "%go%", 5, 5).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Go interview", 2, "Invitation", "Subj", true))

	filter := models.EmailTemplateFilter{
		ListFilter:     models.ListFilter{Page: 2, Count: 5, Search: "go", Active: &active},
		TemplateTypeID: 2,
	}
	templates, err := repo.GetAll(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Invitation", templates[0].TemplateTypeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateRepository_Update(t *testing.T) {
	repo, mock, cleanup := setupEmailTemplateTestRepository(t)
	defer cleanup()

	subject := "New subject"
	body := "New body"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE email_templates SET subject = ?, body = ? WHERE id = ?")).
		WithArgs(subject, body, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 4, &models.UpdateEmailTemplateRequest{Subject: &subject, Body: &body})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateRepository_ExistsByID(t *testing.T) {
	repo, mock, cleanup := setupEmailTemplateTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM email_templates WHERE id = ?)")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByID(context.Background(), 8)

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
