package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
)

type recipientRepository struct {
	db *sql.DB
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(db *sql.DB) *recipientRepository {
	return &recipientRepository{db: db}
}

const recipientColumns = `r.id, r.name, r.email, r.position_id, COALESCE(p.name, ''), r.notes, r.is_active, r.created_at, r.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipient(row rowScanner) (*models.Recipient, error) {
	recipient := &models.Recipient{}
	var positionID sql.NullInt64
	if err := row.Scan(
		&recipient.ID,
		&recipient.Name,
		&recipient.Email,
		&positionID,
		&recipient.PositionName,
		&recipient.Notes,
		&recipient.IsActive,
		&recipient.CreatedAt,
		&recipient.UpdatedAt,
	); err != nil {
		return nil, err
	}
	recipient.PositionID = intPtr(positionID)
	return recipient, nil
}

// Create inserts a new recipient
func (r *recipientRepository) Create(ctx context.Context, recipient *models.Recipient) error {
	query := `
		INSERT INTO recipients (name, email, position_id, notes, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		recipient.Name,
		recipient.Email,
		nullableInt(recipient.PositionID),
		recipient.Notes,
		recipient.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create recipient: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	recipient.ID = int(id)
	return nil
}

// GetByID retrieves a recipient by ID together with its position name
func (r *recipientRepository) GetByID(ctx context.Context, id int) (*models.Recipient, error) {
	query := `
		SELECT ` + recipientColumns + `
		FROM recipients r
		LEFT JOIN positions p ON p.id = r.position_id
		WHERE r.id = ?
		LIMIT 1
	`

	recipient, err := scanRecipient(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("recipient %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient by ID: %w", err)
	}

	return recipient, nil
}

// GetByIDs retrieves the recipients with the given IDs ordered by name.
// Unknown IDs are silently absent from the result.
func (r *recipientRepository) GetByIDs(ctx context.Context, ids []int) ([]models.Recipient, error) {
	if len(ids) == 0 {
		return []models.Recipient{}, nil
	}

	placeholders, args := inPlaceholders(ids)
	query := fmt.Sprintf(`
		SELECT %s
		FROM recipients r
		LEFT JOIN positions p ON p.id = r.position_id
		WHERE r.id IN (%s)
		ORDER BY r.name
	`, recipientColumns, placeholders)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipients: %w", err)
	}
	defer rows.Close()

	recipients := []models.Recipient{}
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		recipients = append(recipients, *recipient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recipients, nil
}

// GetAll retrieves a paginated list of recipients with the number of emails sent to each
func (r *recipientRepository) GetAll(ctx context.Context, filter models.RecipientFilter) ([]models.RecipientListItem, error) {
	var whereConditions []string
	var args []any

	if filter.PositionID != 0 {
		whereConditions = append(whereConditions, "r.position_id = ?")
		args = append(args, filter.PositionID)
	}
	if filter.Active != nil {
		whereConditions = append(whereConditions, "r.is_active = ?")
		args = append(args, *filter.Active)
	}
	if filter.Search != "" {
		whereConditions = append(whereConditions, "(r.name LIKE ? OR r.email LIKE ? OR r.notes LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.name, r.email, r.position_id, COALESCE(p.name, ''),
			(SELECT COUNT(*) FROM sent_emails se WHERE se.recipient_id = r.id)
		FROM recipients r
		LEFT JOIN positions p ON p.id = r.position_id
		%s
		ORDER BY r.name
		LIMIT ? OFFSET ?
	`, whereClause(whereConditions))

	args = append(args, filter.Count, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipients: %w", err)
	}
	defer rows.Close()

	recipients := []models.RecipientListItem{}
	for rows.Next() {
		var item models.RecipientListItem
		var positionID sql.NullInt64
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Email,
			&positionID,
			&item.PositionName,
			&item.EmailCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		item.PositionID = intPtr(positionID)
		recipients = append(recipients, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recipients, nil
}

// Update applies the non-nil fields of req to a recipient. A PositionID of 0 clears the position.
func (r *recipientRepository) Update(ctx context.Context, id int, req *models.UpdateRecipientRequest) error {
	setClauses := []string{}
	args := []any{}

	if req.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Email != nil {
		setClauses = append(setClauses, "email = ?")
		args = append(args, *req.Email)
	}
	if req.PositionID != nil {
		setClauses = append(setClauses, "position_id = ?")
		if *req.PositionID == 0 {
			args = append(args, nil)
		} else {
			args = append(args, *req.PositionID)
		}
	}
	if req.Notes != nil {
		setClauses = append(setClauses, "notes = ?")
		args = append(args, *req.Notes)
	}
	if req.IsActive != nil {
		setClauses = append(setClauses, "is_active = ?")
		args = append(args, *req.IsActive)
	}

	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE recipients SET %s WHERE id = ?`, strings.Join(setClauses, ", "))

	return execAffectingOne(ctx, r.db, "recipient", query, args...)
}

// Delete deletes a recipient by ID. Their sent emails are removed by the foreign key.
func (r *recipientRepository) Delete(ctx context.Context, id int) error {
	return execAffectingOne(ctx, r.db, "recipient", `DELETE FROM recipients WHERE id = ?`, id)
}

// ExistsByEmail checks if another recipient already uses email
func (r *recipientRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM recipients WHERE email = ? AND id <> ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check recipient email existence: %w", err)
	}

	return exists, nil
}
