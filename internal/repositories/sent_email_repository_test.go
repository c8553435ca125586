package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/interviewmail/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSentEmailTestRepository(t *testing.T) (*sentEmailRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := setupMockDB(t)
	return NewSentEmailRepository(db), mock, cleanup
}

func TestSentEmailRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		ccIDs         []int
		bccIDs        []int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name:   "with cc and bcc",
			ccIDs:  []int{2, 3},
			bccIDs: []int{4},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_emails")).
					WithArgs(1, nil, "Subject", "Body", nil, []byte(`{"company":"Acme"}`), "pending", "").
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_email_cc (sent_email_id, recipient_id) VALUES (?, ?), (?, ?)")).
					WithArgs(10, 2, 10, 3).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_email_bcc (sent_email_id, recipient_id) VALUES (?, ?)")).
					WithArgs(10, 4).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "without copies",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_emails")).
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:  "copy insert failure rolls back",
			ccIDs: []int{99},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_emails")).
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_email_cc")).
					WillReturnError(errors.New("foreign key constraint fails"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSentEmailTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			email := &models.SentEmail{
				RecipientID:     1,
				Subject:         "Subject",
				Body:            "Body",
				CustomVariables: map[string]any{"company": "Acme"},
			}
			err := repo.Create(context.Background(), email, tt.ccIDs, tt.bccIDs)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Zero(t, email.ID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 10, email.ID)
				assert.Equal(t, models.EmailStatusPending, email.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSentEmailRepository_GetByID(t *testing.T) {
	now := time.Now()
	interview := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	columns := []string{
		"id", "recipient_id", "template_id", "subject", "body", "interview_datetime",
		"custom_variables", "sent_at", "status", "error_message", "created_at", "updated_at",
		"r_id", "r_name", "r_email", "r_position_id", "r_position_name", "r_notes", "r_is_active", "r_created_at", "r_updated_at",
	}

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupSentEmailTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("FROM sent_emails se JOIN recipients r ON r.id = se.recipient_id")).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				10, 1, 5, "Hi {{name}}", "Body", interview,
				`{"company":"Acme"}`, now, "failed", "smtp down", now, now,
				1, "Jane Doe", "jane@example.com", nil, "", "", true, now, now,
			))
		mock.ExpectQuery(regexp.QuoteMeta("FROM sent_email_cc c")).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(recipientTestColumns).
				AddRow(2, "Alice", "alice@example.com", nil, "", "", true, now, now))
		mock.ExpectQuery(regexp.QuoteMeta("FROM sent_email_bcc c")).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(recipientTestColumns))

		email, err := repo.GetByID(context.Background(), 10)

		require.NoError(t, err)
		require.NotNil(t, email.TemplateID)
		assert.Equal(t, 5, *email.TemplateID)
		require.NotNil(t, email.InterviewDatetime)
		assert.True(t, interview.Equal(*email.InterviewDatetime))
		assert.Equal(t, models.EmailStatusFailed, email.Status)
		assert.Equal(t, "smtp down", email.ErrorMessage)
		assert.Equal(t, map[string]any{"company": "Acme"}, email.CustomVariables)
		assert.Equal(t, "jane@example.com", email.Recipient.Email)
		require.Len(t, email.CC, 1)
		assert.Equal(t, "Alice", email.CC[0].Name)
		assert.Empty(t, email.BCC)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupSentEmailTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("FROM sent_emails se")).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(columns))

		email, err := repo.GetByID(context.Background(), 10)

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Equal(t, "sent email not found", err.Error())
		assert.Nil(t, email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSentEmailRepository_GetAll(t *testing.T) {
	now := time.Now()
	after := now.Add(-24 * time.Hour)
	columns := []string{"id", "recipient_id", "name", "email", "template_id", "subject", "status", "sent_at", "attachment_count"}

	tests := []struct {
		name          string
		filter        models.SentEmailFilter
		setupMock     func(sqlmock.Sqlmock)
		expectedCount int
	}{
		{
			name:   "newest first without filters",
			filter: models.SentEmailFilter{Page: 1, Count: 20},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN recipients r ON r.id = se.recipient_id ORDER BY se.sent_at DESC, se.id DESC LIMIT ? OFFSET ?")).
					WithArgs(20, 0).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(2, 1, "Jane", "jane@example.com", nil, "B", "pending", now, 0).
						AddRow(1, 1, "Jane", "jane@example.com", 3, "A", "success", after, 2))
			},
			expectedCount: 2,
		},
		{
			name: "all filters",
			filter: models.SentEmailFilter{
				Page: 3, Count: 10, Search: "jane", Status: models.EmailStatusFailed,
				TemplateID: 3, RecipientID: 1, SentAfter: &after, SentBefore: &now,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE se.`status` = ? AND se.template_id = ? AND se.recipient_id = ? AND se.sent_at >= ? AND se.sent_at <= ? AND (r.name LIKE ? OR r.email LIKE ? OR se.subject LIKE ? OR se.body LIKE ?)")).
					WithArgs("failed", 3, 1, after, now, "%jane%", "%jane%", "%jane%", "%jane%", 10, 20).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSentEmailTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			emails, err := repo.GetAll(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.Len(t, emails, tt.expectedCount)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSentEmailRepository_Update(t *testing.T) {
	subject := "Updated"
	cc := []int{7}
	noTemplate := 0

	tests := []struct {
		name          string
		req           *models.UpdateSentEmailRequest
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "fields and cc replaced",
			req:  &models.UpdateSentEmailRequest{Subject: &subject, TemplateID: &noTemplate, CCRecipientIDs: &cc},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE sent_emails SET template_id = ?, subject = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
					WithArgs(nil, subject, 10).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sent_email_cc WHERE sent_email_id = ?")).
					WithArgs(10).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_email_cc")).
					WithArgs(10, 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "not found",
			req:  &models.UpdateSentEmailRequest{Subject: &subject},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE sent_emails")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectedError: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSentEmailTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			err := repo.Update(context.Background(), 10, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSentEmailRepository_UpdateStatus(t *testing.T) {
	sentAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("success stamps sent_at", func(t *testing.T) {
		repo, mock, cleanup := setupSentEmailTestRepository(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE sent_emails SET `status` = ?, error_message = ?, sent_at = ? WHERE id = ?")).
			WithArgs("success", "", sentAt, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), 10, models.EmailStatusSuccess, "", &sentAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure leaves sent_at", func(t *testing.T) {
		repo, mock, cleanup := setupSentEmailTestRepository(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE sent_emails SET `status` = ?, error_message = ? WHERE id = ?")).
			WithArgs("failed", "connection refused", 10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), 10, models.EmailStatusFailed, "connection refused", nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSentEmailRepository_UpdateContentAndDelete(t *testing.T) {
	repo, mock, cleanup := setupSentEmailTestRepository(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sent_emails SET subject = ?, body = ? WHERE id = ?")).
		WithArgs("S", "B", 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sent_emails WHERE id = ?")).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateContent(context.Background(), 10, "S", "B"))
	assert.ErrorIs(t, repo.Delete(context.Background(), 10), models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomVariablesEncoding(t *testing.T) {
	data, err := marshalCustomVariables(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	vars, err := unmarshalCustomVariables(nil)
	require.NoError(t, err)
	assert.Empty(t, vars)

	vars, err = unmarshalCustomVariables([]byte(`{"rounds":3,"ratio":3.0,"company":"Acme"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"rounds": json.Number("3"), "ratio": json.Number("3.0"), "company": "Acme"}, vars)

	_, err = unmarshalCustomVariables([]byte("not json"))
	assert.Error(t, err)
}
