package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
)

type emailTemplateRepository struct {
	db *sql.DB
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *sql.DB) *emailTemplateRepository {
	return &emailTemplateRepository{db: db}
}

// Create inserts a new email template
func (r *emailTemplateRepository) Create(ctx context.Context, template *models.EmailTemplate) error {
	query := `
		INSERT INTO email_templates (name, template_type_id, subject, body, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		template.Name,
		template.TemplateTypeID,
		template.Subject,
		template.Body,
		template.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create email template: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	template.ID = int(id)
	return nil
}

// GetByID retrieves an email template by ID together with its type name
func (r *emailTemplateRepository) GetByID(ctx context.Context, id int) (*models.EmailTemplate, error) {
	query := `
		SELECT et.id, et.name, et.template_type_id, tt.name, et.subject, et.body, et.is_active, et.created_at, et.updated_at
		FROM email_templates et
		JOIN template_types tt ON tt.id = et.template_type_id
		WHERE et.id = ?
		LIMIT 1
	`

	template := &models.EmailTemplate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&template.ID,
		&template.Name,
		&template.TemplateTypeID,
		&template.TemplateTypeName,
		&template.Subject,
		&template.Body,
		&template.IsActive,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("email template %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get email template by ID: %w", err)
	}

	return template, nil
}

// GetTemplateByID retrieves the raw subject and body of an email template
func (r *emailTemplateRepository) GetTemplateByID(ctx context.Context, id int) (*models.EmailTemplateParts, error) {
	query := `
		SELECT subject, body
		FROM email_templates
		WHERE id = ?
		LIMIT 1
	`

	parts := &models.EmailTemplateParts{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&parts.Subject, &parts.Body)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("email template %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get email template parts by ID: %w", err)
	}

	return parts, nil
}

// GetAll retrieves a paginated list of email templates
func (r *emailTemplateRepository) GetAll(ctx context.Context, filter models.EmailTemplateFilter) ([]models.EmailTemplateListItem, error) {
	var whereConditions []string
	var args []any

	if filter.TemplateTypeID != 0 {
		whereConditions = append(whereConditions, "et.template_type_id = ?")
		args = append(args, filter.TemplateTypeID)
	}
	if filter.Active != nil {
		whereConditions = append(whereConditions, "et.is_active = ?")
		args = append(args, *filter.Active)
	}
	if filter.Search != "" {
		whereConditions = append(whereConditions, "(et.name LIKE ? OR et.subject LIKE ? OR et.body LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	query := fmt.Sprintf(`
		SELECT et.id, et.name, et.template_type_id, tt.name, et.subject, et.is_active
		FROM email_templates et
		JOIN template_types tt ON tt.id = et.template_type_id
		%s
		ORDER BY tt.name, et.name
		LIMIT ? OFFSET ?
	`, whereClause(whereConditions))

	args = append(args, filter.Count, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query email templates: %w", err)
	}
	defer rows.Close()

	templates := []models.EmailTemplateListItem{}
	for rows.Next() {
		var template models.EmailTemplateListItem
		if err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.TemplateTypeID,
			&template.TemplateTypeName,
			&template.Subject,
			&template.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan email template: %w", err)
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return templates, nil
}

// Update applies the non-nil fields of req to an email template
func (r *emailTemplateRepository) Update(ctx context.Context, id int, req *models.UpdateEmailTemplateRequest) error {
	setClauses := []string{}
	args := []any{}

	if req.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *req.Name)
	}
	if req.TemplateTypeID != nil {
		setClauses = append(setClauses, "template_type_id = ?")
		args = append(args, *req.TemplateTypeID)
	}
	if req.Subject != nil {
		setClauses = append(setClauses, "subject = ?")
		args = append(args, *req.Subject)
	}
	if req.Body != nil {
		setClauses = append(setClauses, "body = ?")
		args = append(args, *req.Body)
	}
	if req.IsActive != nil {
		setClauses = append(setClauses, "is_active = ?")
		args = append(args, *req.IsActive)
	}

	if len(setClauses) == 0 {
		return nil // Nothing to update
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE email_templates
		SET %s
		WHERE id = ?
	`, strings.Join(setClauses, ", "))

	return execAffectingOne(ctx, r.db, "email template", query, args...)
}

// Delete deletes an email template by ID. Sent emails keep their content and lose the reference.
func (r *emailTemplateRepository) Delete(ctx context.Context, id int) error {
	return execAffectingOne(ctx, r.db, "email template", `DELETE FROM email_templates WHERE id = ?`, id)
}

// ExistsByID checks if an email template exists with the given ID
func (r *emailTemplateRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM email_templates WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ID existence: %w", err)
	}

	return exists, nil
}
