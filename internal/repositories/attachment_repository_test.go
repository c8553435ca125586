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

var attachmentTestColumns = []string{"id", "sent_email_id", "file_path", "filename", "content_type", "size", "uploaded_at"}

func setupAttachmentTestRepository(t *testing.T) (*attachmentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := setupMockDB(t)
	return NewAttachmentRepository(db), mock, cleanup
}

func TestAttachmentRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupAttachmentTestRepository(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sent_email_attachments (sent_email_id, file_path, filename, content_type, size)")).
		WithArgs(10, "email_attachments/2026/01/02/a.pdf", "cv.pdf", "application/pdf", int64(2048)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	attachment := &models.SentEmailAttachment{
		SentEmailID: 10,
		FilePath:    "email_attachments/2026/01/02/a.pdf",
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        2048,
	}
	require.NoError(t, repo.Create(context.Background(), attachment))
	assert.Equal(t, 1, attachment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_GetBySentEmailID(t *testing.T) {
	now := time.Now()

	repo, mock, cleanup := setupAttachmentTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM sent_email_attachments WHERE sent_email_id = ? ORDER BY id")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(attachmentTestColumns).
			AddRow(1, 10, "p/a.pdf", "cv.pdf", "application/pdf", 2048, now).
			AddRow(2, 10, "p/b.png", "photo.png", "image/png", 100, now))

	attachments, err := repo.GetBySentEmailID(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, attachments, 2)
	assert.Equal(t, int64(2048), attachments[0].Size)
	assert.Equal(t, "photo.png", attachments[1].Filename)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_GetByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		rows          *sqlmock.Rows
		expectedError error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(attachmentTestColumns).AddRow(2, 10, "p/b.png", "photo.png", "image/png", 100, now),
		},
		{
			name:          "belongs to another email",
			rows:          sqlmock.NewRows(attachmentTestColumns),
			expectedError: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAttachmentTestRepository(t)
			defer cleanup()

			mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ? AND sent_email_id = ?")).
				WithArgs(2, 10).
				WillReturnRows(tt.rows)

			attachment, err := repo.GetByID(context.Background(), 10, 2)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, attachment)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "photo.png", attachment.Filename)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
