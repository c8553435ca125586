package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/interviewmail/backend/internal/models"
)

const (
	ccTable  = "sent_email_cc"
	bccTable = "sent_email_bcc"
)

type sentEmailRepository struct {
	db *sql.DB
}

// NewSentEmailRepository creates a new sent email repository
func NewSentEmailRepository(db *sql.DB) *sentEmailRepository {
	return &sentEmailRepository{db: db}
}

// Create inserts a sent email together with its CC and BCC sets in one transaction
func (r *sentEmailRepository) Create(ctx context.Context, email *models.SentEmail, ccIDs, bccIDs []int) error {
	customVars, err := marshalCustomVariables(email.CustomVariables)
	if err != nil {
		return err
	}

	status := email.Status
	if status == "" {
		status = models.EmailStatusPending
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO sent_emails (recipient_id, template_id, subject, body, interview_datetime, custom_variables, ` + "`status`" + `, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		email.RecipientID,
		nullableInt(email.TemplateID),
		email.Subject,
		email.Body,
		nullableTime(email.InterviewDatetime),
		customVars,
		status,
		email.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to create sent email: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	if err := insertCopies(ctx, tx, ccTable, int(id), ccIDs); err != nil {
		return err
	}
	if err := insertCopies(ctx, tx, bccTable, int(id), bccIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	email.ID = int(id)
	email.Status = status
	return nil
}

// GetByID retrieves a sent email with its main recipient and the CC and BCC recipients.
// Attachments are loaded separately.
func (r *sentEmailRepository) GetByID(ctx context.Context, id int) (*models.SentEmail, error) {
	query := `
		SELECT se.id, se.recipient_id, se.template_id, se.subject, se.body, se.interview_datetime,
			se.custom_variables, se.sent_at, se.` + "`status`" + `, se.error_message, se.created_at, se.updated_at,
			` + recipientColumns + `
		FROM sent_emails se
		JOIN recipients r ON r.id = se.recipient_id
		LEFT JOIN positions p ON p.id = r.position_id
		WHERE se.id = ?
		LIMIT 1
	`

	email := &models.SentEmail{}
	recipient := &models.Recipient{}
	var templateID, positionID sql.NullInt64
	var interview sql.NullTime
	var customVars []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&email.ID,
		&email.RecipientID,
		&templateID,
		&email.Subject,
		&email.Body,
		&interview,
		&customVars,
		&email.SentAt,
		&email.Status,
		&email.ErrorMessage,
		&email.CreatedAt,
		&email.UpdatedAt,
		&recipient.ID,
		&recipient.Name,
		&recipient.Email,
		&positionID,
		&recipient.PositionName,
		&recipient.Notes,
		&recipient.IsActive,
		&recipient.CreatedAt,
		&recipient.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sent email %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sent email by ID: %w", err)
	}

	email.TemplateID = intPtr(templateID)
	if interview.Valid {
		t := interview.Time
		email.InterviewDatetime = &t
	}
	recipient.PositionID = intPtr(positionID)
	email.Recipient = recipient

	email.CustomVariables, err = unmarshalCustomVariables(customVars)
	if err != nil {
		return nil, err
	}

	email.CC, err = r.getCopies(ctx, ccTable, id)
	if err != nil {
		return nil, err
	}
	email.BCC, err = r.getCopies(ctx, bccTable, id)
	if err != nil {
		return nil, err
	}

	return email, nil
}

// GetAll retrieves a paginated list of sent emails, newest first
func (r *sentEmailRepository) GetAll(ctx context.Context, filter models.SentEmailFilter) ([]models.SentEmailListItem, error) {
	var whereConditions []string
	var args []any

	if filter.Status != "" {
		whereConditions = append(whereConditions, "se.`status` = ?")
		args = append(args, filter.Status)
	}
	if filter.TemplateID != 0 {
		whereConditions = append(whereConditions, "se.template_id = ?")
		args = append(args, filter.TemplateID)
	}
	if filter.RecipientID != 0 {
		whereConditions = append(whereConditions, "se.recipient_id = ?")
		args = append(args, filter.RecipientID)
	}
	if filter.SentAfter != nil {
		whereConditions = append(whereConditions, "se.sent_at >= ?")
		args = append(args, *filter.SentAfter)
	}
	if filter.SentBefore != nil {
		whereConditions = append(whereConditions, "se.sent_at <= ?")
		args = append(args, *filter.SentBefore)
	}
	if filter.Search != "" {
		whereConditions = append(whereConditions, "(r.name LIKE ? OR r.email LIKE ? OR se.subject LIKE ? OR se.body LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}

	query := fmt.Sprintf(`
		SELECT se.id, se.recipient_id, r.name, r.email, se.template_id, se.subject, se.`+"`status`"+`, se.sent_at,
			(SELECT COUNT(*) FROM sent_email_attachments a WHERE a.sent_email_id = se.id)
		FROM sent_emails se
		JOIN recipients r ON r.id = se.recipient_id
		%s
		ORDER BY se.sent_at DESC, se.id DESC
		LIMIT ? OFFSET ?
	`, whereClause(whereConditions))

	args = append(args, filter.Count, (filter.Page-1)*filter.Count)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sent emails: %w", err)
	}
	defer rows.Close()

	emails := []models.SentEmailListItem{}
	for rows.Next() {
		var item models.SentEmailListItem
		var templateID sql.NullInt64
		if err := rows.Scan(
			&item.ID,
			&item.RecipientID,
			&item.RecipientName,
			&item.RecipientEmail,
			&templateID,
			&item.Subject,
			&item.Status,
			&item.SentAt,
			&item.AttachmentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sent email: %w", err)
		}
		item.TemplateID = intPtr(templateID)
		emails = append(emails, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return emails, nil
}

// Update applies the non-nil fields of req and replaces the CC/BCC sets when given.
// A TemplateID of 0 clears the template reference.
func (r *sentEmailRepository) Update(ctx context.Context, id int, req *models.UpdateSentEmailRequest) error {
	setClauses := []string{}
	args := []any{}

	if req.RecipientID != nil {
		setClauses = append(setClauses, "recipient_id = ?")
		args = append(args, *req.RecipientID)
	}
	if req.TemplateID != nil {
		setClauses = append(setClauses, "template_id = ?")
		if *req.TemplateID == 0 {
			args = append(args, nil)
		} else {
			args = append(args, *req.TemplateID)
		}
	}
	if req.Subject != nil {
		setClauses = append(setClauses, "subject = ?")
		args = append(args, *req.Subject)
	}
	if req.Body != nil {
		setClauses = append(setClauses, "body = ?")
		args = append(args, *req.Body)
	}
	if req.InterviewDatetime != nil {
		setClauses = append(setClauses, "interview_datetime = ?")
		args = append(args, *req.InterviewDatetime)
	}
	if req.CustomVariables != nil {
		customVars, err := marshalCustomVariables(*req.CustomVariables)
		if err != nil {
			return err
		}
		setClauses = append(setClauses, "custom_variables = ?")
		args = append(args, customVars)
	}

	// Touching updated_at keeps the row count meaningful when only the copy sets change
	setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`UPDATE sent_emails SET %s WHERE id = ?`, strings.Join(setClauses, ", "))
	if err := execAffectingOne(ctx, tx, "sent email", query, args...); err != nil {
		return err
	}

	if req.CCRecipientIDs != nil {
		if err := replaceCopies(ctx, tx, ccTable, id, *req.CCRecipientIDs); err != nil {
			return err
		}
	}
	if req.BCCRecipientIDs != nil {
		if err := replaceCopies(ctx, tx, bccTable, id, *req.BCCRecipientIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateStatus records the outcome of a send attempt. sentAt is left unchanged when nil.
func (r *sentEmailRepository) UpdateStatus(ctx context.Context, id int, status models.EmailStatus, errorMessage string, sentAt *time.Time) error {
	if sentAt != nil {
		query := "UPDATE sent_emails SET `status` = ?, error_message = ?, sent_at = ? WHERE id = ?"
		return execAffectingOne(ctx, r.db, "sent email", query, status, errorMessage, *sentAt, id)
	}
	query := "UPDATE sent_emails SET `status` = ?, error_message = ? WHERE id = ?"
	return execAffectingOne(ctx, r.db, "sent email", query, status, errorMessage, id)
}

// UpdateContent overwrites the subject and body of a sent email
func (r *sentEmailRepository) UpdateContent(ctx context.Context, id int, subject, body string) error {
	query := `UPDATE sent_emails SET subject = ?, body = ? WHERE id = ?`
	return execAffectingOne(ctx, r.db, "sent email", query, subject, body, id)
}

// Delete deletes a sent email. CC/BCC rows and attachment rows are removed by the foreign keys.
func (r *sentEmailRepository) Delete(ctx context.Context, id int) error {
	return execAffectingOne(ctx, r.db, "sent email", `DELETE FROM sent_emails WHERE id = ?`, id)
}

func (r *sentEmailRepository) getCopies(ctx context.Context, table string, id int) ([]models.Recipient, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s c
		JOIN recipients r ON r.id = c.recipient_id
		LEFT JOIN positions p ON p.id = r.position_id
		WHERE c.sent_email_id = ?
		ORDER BY r.name
	`, recipientColumns, table)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s recipients: %w", table, err)
	}
	defer rows.Close()

	recipients := []models.Recipient{}
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s recipient: %w", table, err)
		}
		recipients = append(recipients, *recipient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recipients, nil
}

func insertCopies(ctx context.Context, tx *sql.Tx, table string, sentEmailID int, recipientIDs []int) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	values := make([]string, 0, len(recipientIDs))
	args := make([]any, 0, len(recipientIDs)*2)
	for _, recipientID := range recipientIDs {
		values = append(values, "(?, ?)")
		args = append(args, sentEmailID, recipientID)
	}

	query := fmt.Sprintf(`INSERT INTO %s (sent_email_id, recipient_id) VALUES %s`, table, strings.Join(values, ", "))
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %s recipients: %w", table, err)
	}
	return nil
}

func replaceCopies(ctx context.Context, tx *sql.Tx, table string, sentEmailID int, recipientIDs []int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE sent_email_id = ?`, table)
	if _, err := tx.ExecContext(ctx, query, sentEmailID); err != nil {
		return fmt.Errorf("failed to clear %s recipients: %w", table, err)
	}
	return insertCopies(ctx, tx, table, sentEmailID, recipientIDs)
}

func marshalCustomVariables(vars map[string]any) ([]byte, error) {
	if vars == nil {
		vars = map[string]any{}
	}
	data, err := json.Marshal(vars)
	if err != nil {
		return nil, fmt.Errorf("failed to encode custom variables: %w", err)
	}
	return data, nil
}

func unmarshalCustomVariables(data []byte) (map[string]any, error) {
	vars := map[string]any{}
	if len(data) == 0 {
		return vars, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&vars); err != nil {
		return nil, fmt.Errorf("failed to decode custom variables: %w", err)
	}
	return vars, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
