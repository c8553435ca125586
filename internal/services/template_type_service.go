package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// TemplateTypeRepository is the interface that wraps methods for template type data access
type TemplateTypeRepository interface {
	Create(ctx context.Context, templateType *models.TemplateType) error
	GetByID(ctx context.Context, id int) (*models.TemplateType, error)
	GetAll(ctx context.Context, filter models.ListFilter) ([]models.TemplateType, error)
	Update(ctx context.Context, id int, req *models.UpdateTemplateTypeRequest) error
	Delete(ctx context.Context, id int) error
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
	CountTemplates(ctx context.Context, id int) (int, error)
}

type templateTypeService struct {
	repo   TemplateTypeRepository
	logger *zap.Logger
}

// NewTemplateTypeService creates a new template type service
func NewTemplateTypeService(repo TemplateTypeRepository, logger *zap.Logger) *templateTypeService {
	return &templateTypeService{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new template type
func (s *templateTypeService) Create(ctx context.Context, req *models.CreateTemplateTypeRequest) (int, error) {
	var errs fieldErrors
	errs.required("Name", req.Name, maxTemplateTypeName)
	if err := errs.err(); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.checkName(ctx, name, 0); err != nil {
		return 0, err
	}

	templateType := &models.TemplateType{Name: name, IsActive: boolOrTrue(req.IsActive)}
	if err := s.repo.Create(ctx, templateType); err != nil {
		return 0, err
	}

	return templateType.ID, nil
}

// GetByID retrieves a template type by ID
func (s *templateTypeService) GetByID(ctx context.Context, id int) (*models.TemplateType, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves a paginated list of template types
func (s *templateTypeService) GetAll(ctx context.Context, filter models.ListFilter) ([]models.TemplateType, error) {
	filter.Page, filter.Count = normalizePage(filter.Page, filter.Count)
	return s.repo.GetAll(ctx, filter)
}

// Update partially updates a template type
func (s *templateTypeService) Update(ctx context.Context, id int, req *models.UpdateTemplateTypeRequest) error {
	var errs fieldErrors
	errs.optional("Name", req.Name, maxTemplateTypeName)
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

// Delete deletes a template type that no email template uses anymore
func (s *templateTypeService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountTemplates(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("template type is used by %d email template(s): %w", count, models.ErrConflict)
	}

	return s.repo.Delete(ctx, id)
}

func (s *templateTypeService) checkName(ctx context.Context, name string, excludeID int) error {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("template type with name '%s' already exists: %w", name, models.ErrConflict)
	}
	return nil
}
