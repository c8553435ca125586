package seed

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/interviewmail/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type createdEmail struct {
	email *models.SentEmail
	cc    []int
	bcc   []int
}

type fakeSentEmailCreator struct {
	created []createdEmail
	err     error
}

func (f *fakeSentEmailCreator) Create(ctx context.Context, email *models.SentEmail, ccIDs, bccIDs []int) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, createdEmail{email: email, cc: ccIDs, bcc: bccIDs})
	return nil
}

func setupSeeder(t *testing.T) (*Seeder, sqlmock.Sqlmock, *fakeSentEmailCreator) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	creator := &fakeSentEmailCreator{}
	s := NewSeeder(db, creator, zap.NewNop())
	s.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }
	return s, mock, creator
}

func expectExisting(mock sqlmock.Sqlmock, table string, count int) {
	for i := 1; i <= count; i++ {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM " + table + " WHERE")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i))
	}
}

func TestSeeder_Run_AlreadySeeded(t *testing.T) {
	s, mock, creator := setupSeeder(t)

	expectExisting(mock, "positions", len(positions))
	expectExisting(mock, "template_types", len(templateTypes))
	expectExisting(mock, "custom_variables", len(customVariables))
	expectExisting(mock, "recipients", len(recipients))
	expectExisting(mock, "email_templates", len(templates))
	for range sampleSubjects {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM sent_emails")).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}

	counts, err := s.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &Counts{}, counts)
	assert.Empty(t, creator.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_Run_PositionError(t *testing.T) {
	s, mock, _ := setupSeeder(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM positions WHERE")).
		WillReturnError(errors.New("connection lost"))

	counts, err := s.Run(context.Background())

	assert.Nil(t, counts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed position 'Software Engineer'")
	assert.Contains(t, err.Error(), "connection lost")
}

func TestSeeder_Ensure(t *testing.T) {
	tests := []struct {
		name            string
		setupMock       func(sqlmock.Sqlmock)
		expectedID      int
		expectedCreated bool
		expectedError   bool
	}{
		{
			name: "existing row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM positions WHERE name = ?")).
					WithArgs("Data Scientist").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
			},
			expectedID: 3,
		},
		{
			name: "missing row is inserted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM positions WHERE name = ?")).
					WithArgs("Data Scientist").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO positions")).
					WithArgs("Data Scientist", "Description for Data Scientist").
					WillReturnResult(sqlmock.NewResult(12, 1))
			},
			expectedID:      12,
			expectedCreated: true,
		},
		{
			name: "insert error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM positions WHERE name = ?")).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO positions")).
					WillReturnError(errors.New("duplicate entry"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock, _ := setupSeeder(t)
			tt.setupMock(mock)

			id, created, err := s.ensure(context.Background(),
				`SELECT id FROM positions WHERE name = ?`, []any{"Data Scientist"},
				`INSERT INTO positions (name, description, is_active) VALUES (?, ?, TRUE)`,
				[]any{"Data Scientist", "Description for Data Scientist"},
			)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
				assert.Equal(t, tt.expectedCreated, created)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSeeder_SeedSentEmails(t *testing.T) {
	s, mock, creator := setupSeeder(t)
	recipientIDs := []int{10, 11, 12, 13}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM sent_emails")).
		WithArgs(10, sampleSubjects[0]).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM sent_emails")).
		WithArgs(12, sampleSubjects[1]).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	for i := 2; i < len(sampleSubjects); i++ {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM sent_emails")).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	}

	created, err := s.seedSentEmails(context.Background(), recipientIDs)

	require.NoError(t, err)
	assert.Equal(t, len(sampleSubjects)-1, created)
	require.Len(t, creator.created, len(sampleSubjects)-1)

	first := creator.created[0]
	assert.Equal(t, 10, first.email.RecipientID)
	assert.Equal(t, []int{11}, first.cc)
	assert.Equal(t, []int{12}, first.bcc)
	assert.Equal(t, models.EmailStatusSuccess, first.email.Status)
	require.NotNil(t, first.email.InterviewDatetime)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), *first.email.InterviewDatetime)

	for _, c := range creator.created {
		assert.NotContains(t, c.cc, c.email.RecipientID)
		assert.NotContains(t, c.bcc, c.email.RecipientID)
		for _, id := range c.cc {
			assert.NotContains(t, c.bcc, id)
		}
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_SeedSentEmails_NoRecipients(t *testing.T) {
	s, mock, creator := setupSeeder(t)

	created, err := s.seedSentEmails(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, creator.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_SeedSentEmails_CreateError(t *testing.T) {
	s, mock, creator := setupSeeder(t)
	creator.err = errors.New("deadlock")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM sent_emails")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := s.seedSentEmails(context.Background(), []int{1, 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
}
