package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// draftURLFormat is the draft endpoint pre-filled with a template
const draftURLFormat = "/admin/sent-emails/draft?template=%d"

// EmailTemplateRepository is the interface that wraps methods for email template data access
type EmailTemplateRepository interface {
	Create(ctx context.Context, template *models.EmailTemplate) error
	GetByID(ctx context.Context, id int) (*models.EmailTemplate, error)
	GetTemplateByID(ctx context.Context, id int) (*models.EmailTemplateParts, error)
	GetAll(ctx context.Context, filter models.EmailTemplateFilter) ([]models.EmailTemplateListItem, error)
	Update(ctx context.Context, id int, req *models.UpdateEmailTemplateRequest) error
	Delete(ctx context.Context, id int) error
	ExistsByID(ctx context.Context, id int) (bool, error)
}

// TemplateTypeLookup resolves template types referenced by email templates
type TemplateTypeLookup interface {
	GetByID(ctx context.Context, id int) (*models.TemplateType, error)
}

type emailTemplateService struct {
	repo      EmailTemplateRepository
	typesRepo TemplateTypeLookup
	logger    *zap.Logger
}

// NewEmailTemplateService creates a new email template service
func NewEmailTemplateService(repo EmailTemplateRepository, typesRepo TemplateTypeLookup, logger *zap.Logger) *emailTemplateService {
	return &emailTemplateService{
		repo:      repo,
		typesRepo: typesRepo,
		logger:    logger,
	}
}

// Create creates a new email template
func (s *emailTemplateService) Create(ctx context.Context, req *models.CreateEmailTemplateRequest) (int, error) {
	var errs fieldErrors
	errs.required("Name", req.Name, maxTemplateName)
	errs.required("Subject", req.Subject, maxSubject)
	if strings.TrimSpace(req.Body) == "" {
		errs.add("Body is required.")
	}
	if req.TemplateTypeID <= 0 {
		errs.add("Template type is required.")
	}
	if err := errs.err(); err != nil {
		return 0, err
	}

	if err := s.checkTemplateType(ctx, req.TemplateTypeID); err != nil {
		return 0, err
	}

	template := &models.EmailTemplate{
		Name:           strings.TrimSpace(req.Name),
		TemplateTypeID: req.TemplateTypeID,
		Subject:        req.Subject,
		Body:           req.Body,
		IsActive:       boolOrTrue(req.IsActive),
	}
	if err := s.repo.Create(ctx, template); err != nil {
		return 0, err
	}

	return template.ID, nil
}

// GetByID retrieves an email template by ID
func (s *emailTemplateService) GetByID(ctx context.Context, id int) (*models.EmailTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves a paginated list of email templates, each with a link to a pre-filled draft
func (s *emailTemplateService) GetAll(ctx context.Context, filter models.EmailTemplateFilter) ([]models.EmailTemplateListItem, error) {
	filter.Page, filter.Count = normalizePage(filter.Page, filter.Count)
	templates, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range templates {
		templates[i].CreateEmailURL = fmt.Sprintf(draftURLFormat, templates[i].ID)
	}
	return templates, nil
}

// Update partially updates an email template. Sent emails created from it keep their own copy.
func (s *emailTemplateService) Update(ctx context.Context, id int, req *models.UpdateEmailTemplateRequest) error {
	var errs fieldErrors
	errs.optional("Name", req.Name, maxTemplateName)
	errs.optional("Subject", req.Subject, maxSubject)
	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		errs.add("Body is required.")
	}
	if req.TemplateTypeID != nil && *req.TemplateTypeID <= 0 {
		errs.add("Template type is required.")
	}
	if err := errs.err(); err != nil {
		return err
	}

	if req.TemplateTypeID != nil {
		if err := s.checkTemplateType(ctx, *req.TemplateTypeID); err != nil {
			return err
		}
	}

	return s.repo.Update(ctx, id, req)
}

// Delete deletes an email template
func (s *emailTemplateService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *emailTemplateService) checkTemplateType(ctx context.Context, id int) error {
	if _, err := s.typesRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.NewValidationError(fmt.Sprintf("Template type %d does not exist.", id))
		}
		return err
	}
	return nil
}
