package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
)

type positionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *sql.DB) *positionRepository {
	return &positionRepository{db: db}
}

// Create inserts a new position
func (r *positionRepository) Create(ctx context.Context, position *models.Position) error {
	query := `
		INSERT INTO positions (name, description, is_active)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, position.Name, position.Description, position.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	position.ID = int(id)
	return nil
}

// GetByID retrieves a position by ID
func (r *positionRepository) GetByID(ctx context.Context, id int) (*models.Position, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM positions
		WHERE id = ?
		LIMIT 1
	`

	position := &models.Position{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&position.ID,
		&position.Name,
		&position.Description,
		&position.IsActive,
		&position.CreatedAt,
		&position.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("position %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position by ID: %w", err)
	}

	return position, nil
}

// GetAll retrieves a paginated list of positions with optional search and active filter
func (r *positionRepository) GetAll(ctx context.Context, filter models.ListFilter) ([]models.Position, error) {
	var whereConditions []string
	var args []any

	if filter.Search != "" {
		whereConditions = append(whereConditions, "(name LIKE ? OR description LIKE ?)")
		args = append(args, "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if filter.Active != nil {
		whereConditions = append(whereConditions, "is_active = ?")
		args = append(args, *filter.Active)
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, is_active, created_at, updated_at
		FROM positions
		%s
		ORDER BY name
		LIMIT ? OFFSET ?
	`, whereClause(whereConditions))

	args = append(args, filter.Count, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions := []models.Position{}
	for rows.Next() {
		var position models.Position
		if err := rows.Scan(
			&position.ID,
			&position.Name,
			&position.Description,
			&position.IsActive,
			&position.CreatedAt,
			&position.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return positions, nil
}

// Update applies the non-nil fields of req to a position
func (r *positionRepository) Update(ctx context.Context, id int, req *models.UpdatePositionRequest) error {
	setClauses := []string{}
	args := []any{}

	if req.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Description != nil {
		setClauses = append(setClauses, "description = ?")
		args = append(args, *req.Description)
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
		UPDATE positions
		SET %s
		WHERE id = ?
	`, strings.Join(setClauses, ", "))

	return execAffectingOne(ctx, r.db, "position", query, args...)
}

// Delete deletes a position by ID. Recipients holding the position are detached by the foreign key.
func (r *positionRepository) Delete(ctx context.Context, id int) error {
	return execAffectingOne(ctx, r.db, "position", `DELETE FROM positions WHERE id = ?`, id)
}

// ExistsByName checks if another position already uses name
func (r *positionRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM positions WHERE name = ? AND id <> ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check position name existence: %w", err)
	}

	return exists, nil
}
