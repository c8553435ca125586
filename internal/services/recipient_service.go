package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

const maxEmailLength = 254

// RecipientRepository is the interface that wraps methods for recipient data access
type RecipientRepository interface {
	Create(ctx context.Context, recipient *models.Recipient) error
	GetByID(ctx context.Context, id int) (*models.Recipient, error)
	GetByIDs(ctx context.Context, ids []int) ([]models.Recipient, error)
	GetAll(ctx context.Context, filter models.RecipientFilter) ([]models.RecipientListItem, error)
	Update(ctx context.Context, id int, req *models.UpdateRecipientRequest) error
	Delete(ctx context.Context, id int) error
	ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error)
}

// PositionLookup resolves positions referenced by recipients
type PositionLookup interface {
	GetByID(ctx context.Context, id int) (*models.Position, error)
}

type recipientService struct {
	repo          RecipientRepository
	positionsRepo PositionLookup
	logger        *zap.Logger
}

// NewRecipientService creates a new recipient service
func NewRecipientService(repo RecipientRepository, positionsRepo PositionLookup, logger *zap.Logger) *recipientService {
	return &recipientService{
		repo:          repo,
		positionsRepo: positionsRepo,
		logger:        logger,
	}
}

// Create creates a new recipient
func (s *recipientService) Create(ctx context.Context, req *models.CreateRecipientRequest) (int, error) {
	email := strings.TrimSpace(req.Email)

	var errs fieldErrors
	errs.required("Name", req.Name, maxRecipientName)
	errs.required("Email", email, maxEmailLength)
	if email != "" {
		errs.email(email)
	}
	if err := errs.err(); err != nil {
		return 0, err
	}

	if err := s.checkEmail(ctx, email, 0); err != nil {
		return 0, err
	}

	var positionID *int
	if req.PositionID != nil && *req.PositionID > 0 {
		if err := s.checkPosition(ctx, *req.PositionID); err != nil {
			return 0, err
		}
		positionID = req.PositionID
	}

	recipient := &models.Recipient{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		PositionID: positionID,
		Notes:      req.Notes,
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, recipient); err != nil {
		return 0, err
	}

	return recipient.ID, nil
}

// GetByID retrieves a recipient by ID
func (s *recipientService) GetByID(ctx context.Context, id int) (*models.Recipient, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves a paginated list of recipients with their email counts
func (s *recipientService) GetAll(ctx context.Context, filter models.RecipientFilter) ([]models.RecipientListItem, error) {
	filter.Page, filter.Count = normalizePage(filter.Page, filter.Count)
	return s.repo.GetAll(ctx, filter)
}

// Update partially updates a recipient
func (s *recipientService) Update(ctx context.Context, id int, req *models.UpdateRecipientRequest) error {
	var errs fieldErrors
	errs.optional("Name", req.Name, maxRecipientName)
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		req.Email = &email
		errs.required("Email", email, maxEmailLength)
		if email != "" {
			errs.email(email)
		}
	}
	if err := errs.err(); err != nil {
		return err
	}

	if req.Email != nil {
		if err := s.checkEmail(ctx, *req.Email, id); err != nil {
			return err
		}
	}
	if req.PositionID != nil && *req.PositionID > 0 {
		if err := s.checkPosition(ctx, *req.PositionID); err != nil {
			return err
		}
	}

	return s.repo.Update(ctx, id, req)
}

// Delete deletes a recipient together with the emails addressed to them
func (s *recipientService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *recipientService) checkEmail(ctx context.Context, email string, excludeID int) error {
	exists, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("recipient with email '%s' already exists: %w", email, models.ErrConflict)
	}
	return nil
}

func (s *recipientService) checkPosition(ctx context.Context, id int) error {
	if _, err := s.positionsRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.NewValidationError(fmt.Sprintf("Position %d does not exist.", id))
		}
		return err
	}
	return nil
}
