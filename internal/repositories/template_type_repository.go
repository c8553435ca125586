package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
)

type templateTypeRepository struct {
	db *sql.DB
}

// NewTemplateTypeRepository creates a new template type repository
func NewTemplateTypeRepository(db *sql.DB) *templateTypeRepository {
	return &templateTypeRepository{db: db}
}

// Create inserts a new template type
func (r *templateTypeRepository) Create(ctx context.Context, templateType *models.TemplateType) error {
	query := `INSERT INTO template_types (name, is_active) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, templateType.Name, templateType.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create template type: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	templateType.ID = int(id)
	return nil
}

// GetByID retrieves a template type by ID
func (r *templateTypeRepository) GetByID(ctx context.Context, id int) (*models.TemplateType, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM template_types
		WHERE id = ?
		LIMIT 1
	`

	templateType := &models.TemplateType{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&templateType.ID,
		&templateType.Name,
		&templateType.IsActive,
		&templateType.CreatedAt,
		&templateType.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("template type %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template type by ID: %w", err)
	}

	return templateType, nil
}

// GetAll retrieves a paginated list of template types
func (r *templateTypeRepository) GetAll(ctx context.Context, filter models.ListFilter) ([]models.TemplateType, error) {
	var whereConditions []string
	var args []any

	if filter.Search != "" {
		whereConditions = append(whereConditions, "name LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.Active != nil {
		whereConditions = append(whereConditions, "is_active = ?")
		args = append(args, *filter.Active)
	}

	query := fmt.Sprintf(`
		SELECT id, name, is_active, created_at, updated_at
		FROM template_types
		%s
		ORDER BY name
		LIMIT ? OFFSET ?
	`, whereClause(whereConditions))

	args = append(args, filter.Count, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query template types: %w", err)
	}
	defer rows.Close()

	types := []models.TemplateType{}
	for rows.Next() {
		var templateType models.TemplateType
		if err := rows.Scan(
			&templateType.ID,
			&templateType.Name,
			&templateType.IsActive,
			&templateType.CreatedAt,
			&templateType.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template type: %w", err)
		}
		types = append(types, templateType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return types, nil
}

// Update applies the non-nil fields of req to a template type
func (r *templateTypeRepository) Update(ctx context.Context, id int, req *models.UpdateTemplateTypeRequest) error {
	setClauses := []string{}
	args := []any{}

	if req.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *req.Name)
	}
	if req.IsActive != nil {
		setClauses = append(setClauses, "is_active = ?")
		args = append(args, *req.IsActive)
	}

	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE template_types SET %s WHERE id = ?`, strings.Join(setClauses, ", "))

	return execAffectingOne(ctx, r.db, "template type", query, args...)
}

// Delete deletes a template type by ID
func (r *templateTypeRepository) Delete(ctx context.Context, id int) error {
	return execAffectingOne(ctx, r.db, "template type", `DELETE FROM template_types WHERE id = ?`, id)
}

// ExistsByName checks if another template type already uses name
func (r *templateTypeRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM template_types WHERE name = ? AND id <> ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check template type name existence: %w", err)
	}

	return exists, nil
}

// CountTemplates returns the number of email templates of a template type
func (r *templateTypeRepository) CountTemplates(ctx context.Context, id int) (int, error) {
	query := `SELECT COUNT(*) FROM email_templates WHERE template_type_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count templates of template type: %w", err)
	}

	return count, nil
}
