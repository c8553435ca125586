package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/interviewmail/backend/internal/models"
)

type attachmentRepository struct {
	db *sql.DB
}

// NewAttachmentRepository creates a new sent email attachment repository
func NewAttachmentRepository(db *sql.DB) *attachmentRepository {
	return &attachmentRepository{db: db}
}

// Create inserts attachment metadata for an already stored file
func (r *attachmentRepository) Create(ctx context.Context, attachment *models.SentEmailAttachment) error {
	query := `
		INSERT INTO sent_email_attachments (sent_email_id, file_path, filename, content_type, size)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		attachment.SentEmailID,
		attachment.FilePath,
		attachment.Filename,
		attachment.ContentType,
		attachment.Size,
	)
	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	attachment.ID = int(id)
	return nil
}

// GetBySentEmailID retrieves every attachment of a sent email in upload order
func (r *attachmentRepository) GetBySentEmailID(ctx context.Context, sentEmailID int) ([]models.SentEmailAttachment, error) {
	query := `
		SELECT id, sent_email_id, file_path, filename, content_type, size, uploaded_at
		FROM sent_email_attachments
		WHERE sent_email_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, sentEmailID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}
	defer rows.Close()

	attachments := []models.SentEmailAttachment{}
	for rows.Next() {
		var attachment models.SentEmailAttachment
		if err := rows.Scan(
			&attachment.ID,
			&attachment.SentEmailID,
			&attachment.FilePath,
			&attachment.Filename,
			&attachment.ContentType,
			&attachment.Size,
			&attachment.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, attachment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return attachments, nil
}

// GetByID retrieves one attachment of a sent email
func (r *attachmentRepository) GetByID(ctx context.Context, sentEmailID, id int) (*models.SentEmailAttachment, error) {
	query := `
		SELECT id, sent_email_id, file_path, filename, content_type, size, uploaded_at
		FROM sent_email_attachments
		WHERE id = ? AND sent_email_id = ?
		LIMIT 1
	`

	attachment := &models.SentEmailAttachment{}
	err := r.db.QueryRowContext(ctx, query, id, sentEmailID).Scan(
		&attachment.ID,
		&attachment.SentEmailID,
		&attachment.FilePath,
		&attachment.Filename,
		&attachment.ContentType,
		&attachment.Size,
		&attachment.UploadedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("attachment %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment by ID: %w", err)
	}

	return attachment, nil
}
