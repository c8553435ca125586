package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// variableNamePattern restricts names to what can appear inside {{...}}
var variableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// CustomVariableRepository is the interface that wraps methods for custom variable data access
type CustomVariableRepository interface {
	Create(ctx context.Context, variable *models.CustomVariable) error
	GetByID(ctx context.Context, id int) (*models.CustomVariable, error)
	GetAll(ctx context.Context, filter models.ListFilter) ([]models.CustomVariable, error)
	GetActiveDefaults(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, id int, req *models.UpdateCustomVariableRequest) error
	Delete(ctx context.Context, id int) error
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
}

type customVariableService struct {
	repo   CustomVariableRepository
	logger *zap.Logger
}

// NewCustomVariableService creates a new custom variable service
func NewCustomVariableService(repo CustomVariableRepository, logger *zap.Logger) *customVariableService {
	return &customVariableService{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new custom variable
func (s *customVariableService) Create(ctx context.Context, req *models.CreateCustomVariableRequest) (int, error) {
	var errs fieldErrors
	errs.required("Name", req.Name, maxVariableName)
	errs.required("Display name", req.DisplayName, maxVariableDisplay)
	errs.maxLength("Default value", req.DefaultValue, maxVariableDefault)
	name := strings.TrimSpace(req.Name)
	if name != "" && !variableNamePattern.MatchString(name) {
		errs.add("Name may only contain letters, digits and underscores.")
	}
	if err := errs.err(); err != nil {
		return 0, err
	}

	if err := s.checkName(ctx, name, 0); err != nil {
		return 0, err
	}

	variable := &models.CustomVariable{
		Name:         name,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		DefaultValue: req.DefaultValue,
		IsActive:     boolOrTrue(req.IsActive),
	}
	if err := s.repo.Create(ctx, variable); err != nil {
		return 0, err
	}

	return variable.ID, nil
}

// GetByID retrieves a custom variable with its placeholder form
func (s *customVariableService) GetByID(ctx context.Context, id int) (*models.CustomVariableView, error) {
	variable, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CustomVariableView{CustomVariable: *variable, Placeholder: variable.Placeholder()}, nil
}

// GetAll retrieves a paginated list of custom variables with their placeholder forms
func (s *customVariableService) GetAll(ctx context.Context, filter models.ListFilter) ([]models.CustomVariableView, error) {
	filter.Page, filter.Count = normalizePage(filter.Page, filter.Count)
	variables, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]models.CustomVariableView, 0, len(variables))
	for _, v := range variables {
		views = append(views, models.CustomVariableView{CustomVariable: v, Placeholder: v.Placeholder()})
	}
	return views, nil
}

// ActiveDefaults returns name -> default value of every active variable
func (s *customVariableService) ActiveDefaults(ctx context.Context) (map[string]string, error) {
	return s.repo.GetActiveDefaults(ctx)
}

// Update partially updates a custom variable
func (s *customVariableService) Update(ctx context.Context, id int, req *models.UpdateCustomVariableRequest) error {
	var errs fieldErrors
	errs.optional("Name", req.Name, maxVariableName)
	errs.optional("Display name", req.DisplayName, maxVariableDisplay)
	if req.DefaultValue != nil {
		errs.maxLength("Default value", *req.DefaultValue, maxVariableDefault)
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != "" && !variableNamePattern.MatchString(name) {
			errs.add("Name may only contain letters, digits and underscores.")
		}
		req.Name = &name
	}
	if err := errs.err(); err != nil {
		return err
	}

	if req.Name != nil {
		if err := s.checkName(ctx, *req.Name, id); err != nil {
			return err
		}
	}

	return s.repo.Update(ctx, id, req)
}

// Delete deletes a custom variable. Values already copied into sent emails are kept.
func (s *customVariableService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *customVariableService) checkName(ctx context.Context, name string, excludeID int) error {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("custom variable with name '%s' already exists: %w", name, models.ErrConflict)
	}
	return nil
}
