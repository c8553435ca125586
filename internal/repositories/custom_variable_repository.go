package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
)

type customVariableRepository struct {
	db *sql.DB
}

// NewCustomVariableRepository creates a new custom variable repository
func NewCustomVariableRepository(db *sql.DB) *customVariableRepository {
	return &customVariableRepository{db: db}
}

// Create inserts a new custom variable
func (r *customVariableRepository) Create(ctx context.Context, variable *models.CustomVariable) error {
	query := `
		INSERT INTO custom_variables (name, display_name, default_value, is_active)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, variable.Name, variable.DisplayName, variable.DefaultValue, variable.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create custom variable: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	variable.ID = int(id)
	return nil
}

// GetByID retrieves a custom variable by ID
func (r *customVariableRepository) GetByID(ctx context.Context, id int) (*models.CustomVariable, error) {
	query := `
		SELECT id, name, display_name, default_value, is_active, created_at, updated_at
		FROM custom_variables
		WHERE id = ?
		LIMIT 1
	`

	variable := &models.CustomVariable{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&variable.ID,
		&variable.Name,
		&variable.DisplayName,
		&variable.DefaultValue,
		&variable.IsActive,
		&variable.CreatedAt,
		&variable.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("custom variable %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get custom variable by ID: %w", err)
	}

	return variable, nil
}

// GetAll retrieves a paginated list of custom variables
func (r *customVariableRepository) GetAll(ctx context.Context, filter models.ListFilter) ([]models.CustomVariable, error) {
	var whereConditions []string
	var args []any

	if filter.Search != "" {
		whereConditions = append(whereConditions, "(name LIKE ? OR display_name LIKE ?)")
		args = append(args, "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if filter.Active != nil {
		whereConditions = append(whereConditions, "is_active = ?")
		args = append(args, *filter.Active)
	}

	query := fmt.Sprintf(`
		SELECT id, name, display_name, default_value, is_active, created_at, updated_at
		FROM custom_variables
		%s
		ORDER BY name
		LIMIT ? OFFSET ?
	`, whereClause(whereConditions))

	args = append(args, filter.Count, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom variables: %w", err)
	}
	defer rows.Close()

	variables := []models.CustomVariable{}
	for rows.Next() {
		var variable models.CustomVariable
		if err := rows.Scan(
			&variable.ID,
			&variable.Name,
			&variable.DisplayName,
			&variable.DefaultValue,
			&variable.IsActive,
			&variable.CreatedAt,
			&variable.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan custom variable: %w", err)
		}
		variables = append(variables, variable)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return variables, nil
}

// GetActiveDefaults returns name -> default value for every active custom variable
func (r *customVariableRepository) GetActiveDefaults(ctx context.Context) (map[string]string, error) {
	query := `SELECT name, default_value FROM custom_variables WHERE is_active = TRUE ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active custom variables: %w", err)
	}
	defer rows.Close()

	defaults := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan custom variable: %w", err)
		}
		defaults[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return defaults, nil
}

// Update applies the non-nil fields of req to a custom variable
func (r *customVariableRepository) Update(ctx context.Context, id int, req *models.UpdateCustomVariableRequest) error {
	setClauses := []string{}
	args := []any{}

	if req.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *req.Name)
	}
	if req.DisplayName != nil {
		setClauses = append(setClauses, "display_name = ?")
		args = append(args, *req.DisplayName)
	}
	if req.DefaultValue != nil {
		setClauses = append(setClauses, "default_value = ?")
		args = append(args, *req.DefaultValue)
	}
	if req.IsActive != nil {
		setClauses = append(setClauses, "is_active = ?")
		args = append(args, *req.IsActive)
	}

	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE custom_variables SET %s WHERE id = ?`, strings.Join(setClauses, ", "))

	return execAffectingOne(ctx, r.db, "custom variable", query, args...)
}

// Delete deletes a custom variable by ID
func (r *customVariableRepository) Delete(ctx context.Context, id int) error {
	return execAffectingOne(ctx, r.db, "custom variable", `DELETE FROM custom_variables WHERE id = ?`, id)
}

// ExistsByName checks if another custom variable already uses name
func (r *customVariableRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM custom_variables WHERE name = ? AND id <> ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check custom variable name existence: %w", err)
	}

	return exists, nil
}
