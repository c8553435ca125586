package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// PositionRepository is the interface that wraps methods for position data access
type PositionRepository interface {
	Create(ctx context.Context, position *models.Position) error
	GetByID(ctx context.Context, id int) (*models.Position, error)
	GetAll(ctx context.Context, filter models.ListFilter) ([]models.Position, error)
	Update(ctx context.Context, id int, req *models.UpdatePositionRequest) error
	Delete(ctx context.Context, id int) error
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
}

type positionService struct {
	repo   PositionRepository
	logger *zap.Logger
}

// NewPositionService creates a new position service
func NewPositionService(repo PositionRepository, logger *zap.Logger) *positionService {
	return &positionService{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new position
func (s *positionService) Create(ctx context.Context, req *models.CreatePositionRequest) (int, error) {
	var errs fieldErrors
	errs.required("Name", req.Name, maxPositionName)
	if err := errs.err(); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.checkName(ctx, name, 0); err != nil {
		return 0, err
	}

	position := &models.Position{
		Name:        name,
		Description: req.Description,
		IsActive:    boolOrTrue(req.IsActive),
	}
	if err := s.repo.Create(ctx, position); err != nil {
		return 0, err
	}

	s.logger.Info("position created", zap.Int("id", position.ID), zap.String("name", position.Name))
	return position.ID, nil
}

// GetByID retrieves a position by ID
func (s *positionService) GetByID(ctx context.Context, id int) (*models.Position, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves a paginated list of positions
func (s *positionService) GetAll(ctx context.Context, filter models.ListFilter) ([]models.Position, error) {
	filter.Page, filter.Count = normalizePage(filter.Page, filter.Count)
	return s.repo.GetAll(ctx, filter)
}

// Update partially updates a position
func (s *positionService) Update(ctx context.Context, id int, req *models.UpdatePositionRequest) error {
	var errs fieldErrors
	errs.optional("Name", req.Name, maxPositionName)
	if err := errs.err(); err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
		if err := s.checkName(ctx, name, id); err != nil {
			return err
		}
	}

	return s.repo.Update(ctx, id, req)
}

// Delete deletes a position; recipients holding it keep existing without a position
func (s *positionService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *positionService) checkName(ctx context.Context, name string, excludeID int) error {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("position with name '%s' already exists: %w", name, models.ErrConflict)
	}
	return nil
}
