package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/interviewmail/backend/internal/mailer"
	"github.com/interviewmail/backend/internal/metrics"
	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// SentEmailRepository is the interface that wraps methods for the sent email ledger
type SentEmailRepository interface {
	Create(ctx context.Context, email *models.SentEmail, ccIDs, bccIDs []int) error
	GetByID(ctx context.Context, id int) (*models.SentEmail, error)
	GetAll(ctx context.Context, filter models.SentEmailFilter) ([]models.SentEmailListItem, error)
	Update(ctx context.Context, id int, req *models.UpdateSentEmailRequest) error
	UpdateStatus(ctx context.Context, id int, status models.EmailStatus, errorMessage string, sentAt *time.Time) error
	UpdateContent(ctx context.Context, id int, subject, body string) error
	Delete(ctx context.Context, id int) error
}

// AttachmentRepository is the interface that wraps methods for attachment metadata
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.SentEmailAttachment) error
	GetBySentEmailID(ctx context.Context, sentEmailID int) ([]models.SentEmailAttachment, error)
	GetByID(ctx context.Context, sentEmailID, id int) (*models.SentEmailAttachment, error)
}

// RecipientLookup resolves the recipients of a sent email
type RecipientLookup interface {
	GetByID(ctx context.Context, id int) (*models.Recipient, error)
	GetByIDs(ctx context.Context, ids []int) ([]models.Recipient, error)
}

// TemplateLookup resolves the template a sent email is based on
type TemplateLookup interface {
	GetByID(ctx context.Context, id int) (*models.EmailTemplate, error)
	GetTemplateByID(ctx context.Context, id int) (*models.EmailTemplateParts, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
}

// VariableDefaults provides the default values of the active custom variables
type VariableDefaults interface {
	GetActiveDefaults(ctx context.Context) (map[string]string, error)
}

// FileStorage stores attachment files
type FileStorage interface {
	Save(originalName string, r io.Reader) (string, int64, error)
	Open(path string) (io.ReadCloser, error)
	Delete(path string) error
}

// DispatchConfig holds the mail settings of the dispatcher
type DispatchConfig struct {
	From              string
	InterviewLocation *time.Location
	MaxFileSize       int64
	MaxTotalSize      int64
}

// SentEmailDependencies groups the collaborators of the sent email service
type SentEmailDependencies struct {
	Repo        SentEmailRepository
	Attachments AttachmentRepository
	Recipients  RecipientLookup
	Templates   TemplateLookup
	Variables   VariableDefaults
	Storage     FileStorage
	Transport   mailer.Transport
	Metrics     *metrics.Metrics
}

type sentEmailService struct {
	repo        SentEmailRepository
	attachments AttachmentRepository
	recipients  RecipientLookup
	templates   TemplateLookup
	variables   VariableDefaults
	storage     FileStorage
	transport   mailer.Transport
	metrics     *metrics.Metrics
	cfg         DispatchConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewSentEmailService creates a new sent email service
func NewSentEmailService(deps SentEmailDependencies, cfg DispatchConfig, logger *zap.Logger) *sentEmailService {
	if cfg.InterviewLocation == nil {
		cfg.InterviewLocation = time.UTC
	}
	return &sentEmailService{
		repo:        deps.Repo,
		attachments: deps.Attachments,
		recipients:  deps.Recipients,
		templates:   deps.Templates,
		variables:   deps.Variables,
		storage:     deps.Storage,
		transport:   deps.Transport,
		metrics:     deps.Metrics,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates and stores a new sent email with its attachments, then
// dispatches it when req.Send is set. Validation happens before anything is persisted.
func (s *sentEmailService) Create(ctx context.Context, req *models.CreateSentEmailRequest, files []models.AttachmentUpload) (*models.SaveSentEmailResponse, error) {
	var errs fieldErrors
	if req.RecipientID <= 0 {
		errs.add("Recipient is required.")
	}
	errs.required("Subject", req.Subject, maxSubject)
	if strings.TrimSpace(req.Body) == "" {
		errs.add("Body is required.")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	ccIDs := uniqueIDs(req.CCRecipientIDs)
	bccIDs := uniqueIDs(req.BCCRecipientIDs)
	if err := s.checkRecipients(ctx, req.RecipientID, ccIDs, bccIDs); err != nil {
		return nil, err
	}
	if req.TemplateID != nil && *req.TemplateID <= 0 {
		req.TemplateID = nil
	}
	if req.TemplateID != nil {
		if err := s.checkTemplate(ctx, *req.TemplateID); err != nil {
			return nil, err
		}
	}
	if err := ValidateAttachments(files, s.cfg.MaxFileSize, s.cfg.MaxTotalSize); err != nil {
		return nil, err
	}

	customVars := req.CustomVariables
	if customVars == nil {
		defaults, err := s.defaultVariables(ctx)
		if err != nil {
			return nil, err
		}
		customVars = defaults
	}

	email := &models.SentEmail{
		RecipientID:       req.RecipientID,
		TemplateID:        req.TemplateID,
		Subject:           req.Subject,
		Body:              req.Body,
		InterviewDatetime: req.InterviewDatetime,
		CustomVariables:   customVars,
		Status:            models.EmailStatusPending,
	}
	if err := s.repo.Create(ctx, email, ccIDs, bccIDs); err != nil {
		return nil, err
	}

	if err := s.storeAttachments(ctx, email.ID, files); err != nil {
		return nil, err
	}

	s.logger.Info("sent email created",
		zap.Int("id", email.ID),
		zap.Int("recipient_id", email.RecipientID),
		zap.Int("attachments", len(files)),
	)

	resp := &models.SaveSentEmailResponse{ID: email.ID}
	if req.Send {
		result, err := s.Dispatch(ctx, email.ID)
		if err != nil {
			return nil, err
		}
		resp.Send = result
	}
	return resp, nil
}

// storeAttachments writes the uploaded files and their metadata. On failure the
// stored files and the new sent email are removed again.
func (s *sentEmailService) storeAttachments(ctx context.Context, sentEmailID int, files []models.AttachmentUpload) error {
	var stored []string
	rollback := func(cause error) error {
		for _, path := range stored {
			if err := s.storage.Delete(path); err != nil {
				s.logger.Warn("failed to remove stored attachment", zap.String("path", path), zap.Error(err))
			}
		}
		if err := s.repo.Delete(ctx, sentEmailID); err != nil {
			s.logger.Error("failed to remove sent email after attachment failure", zap.Int("id", sentEmailID), zap.Error(err))
		}
		return cause
	}

	for _, f := range files {
		path, size, err := s.storage.Save(f.Filename, f.Reader)
		if err != nil {
			return rollback(fmt.Errorf("failed to store attachment '%s': %w", f.Filename, err))
		}
		stored = append(stored, path)

		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		attachment := &models.SentEmailAttachment{
			SentEmailID: sentEmailID,
			FilePath:    path,
			Filename:    f.Filename,
			ContentType: contentType,
			Size:        size,
		}
		if err := s.attachments.Create(ctx, attachment); err != nil {
			return rollback(err)
		}
	}
	return nil
}

// Update partially updates a sent email and dispatches it when req.Send is set.
// Attachments cannot be changed after creation.
func (s *sentEmailService) Update(ctx context.Context, id int, req *models.UpdateSentEmailRequest) (*models.SaveSentEmailResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var errs fieldErrors
	if req.RecipientID != nil && *req.RecipientID <= 0 {
		errs.add("Recipient is required.")
	}
	errs.optional("Subject", req.Subject, maxSubject)
	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		errs.add("Body is required.")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	recipientID := existing.RecipientID
	if req.RecipientID != nil {
		recipientID = *req.RecipientID
	}
	ccIDs := recipientIDs(existing.CC)
	if req.CCRecipientIDs != nil {
		ccIDs = uniqueIDs(*req.CCRecipientIDs)
		req.CCRecipientIDs = &ccIDs
	}
	bccIDs := recipientIDs(existing.BCC)
	if req.BCCRecipientIDs != nil {
		bccIDs = uniqueIDs(*req.BCCRecipientIDs)
		req.BCCRecipientIDs = &bccIDs
	}
	if err := s.checkRecipients(ctx, recipientID, ccIDs, bccIDs); err != nil {
		return nil, err
	}

	if req.TemplateID != nil && *req.TemplateID > 0 {
		if err := s.checkTemplate(ctx, *req.TemplateID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, err
	}

	resp := &models.SaveSentEmailResponse{ID: id}
	if req.Send {
		result, err := s.Dispatch(ctx, id)
		if err != nil {
			return nil, err
		}
		resp.Send = result
	}
	return resp, nil
}

// GetByID retrieves a sent email with its recipients and attachments
func (s *sentEmailService) GetByID(ctx context.Context, id int) (*models.SentEmail, error) {
	email, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attachments, err := s.attachments.GetBySentEmailID(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		attachments[i].SizeDisplay = models.FormatSize(attachments[i].Size)
	}
	email.Attachments = attachments

	return email, nil
}

// GetAll retrieves a paginated list of sent emails, newest first
func (s *sentEmailService) GetAll(ctx context.Context, filter models.SentEmailFilter) ([]models.SentEmailListItem, error) {
	filter.Page, filter.Count = normalizePage(filter.Page, filter.Count)
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown status '%s'.", filter.Status))
	}
	return s.repo.GetAll(ctx, filter)
}

// Delete deletes a sent email and its stored attachment files
func (s *sentEmailService) Delete(ctx context.Context, id int) error {
	attachments, err := s.attachments.GetBySentEmailID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, a := range attachments {
		if err := s.storage.Delete(a.FilePath); err != nil {
			s.logger.Warn("failed to remove attachment file",
				zap.Int("sent_email_id", id),
				zap.String("path", a.FilePath),
				zap.Error(err),
			)
		}
	}
	return nil
}

// OpenAttachment returns an attachment of a sent email together with its content
func (s *sentEmailService) OpenAttachment(ctx context.Context, sentEmailID, attachmentID int) (*models.SentEmailAttachment, io.ReadCloser, error) {
	attachment, err := s.attachments.GetByID(ctx, sentEmailID, attachmentID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.storage.Open(attachment.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return attachment, rc, nil
}

// TemplatePrefill returns the raw subject and body of a template for a new draft.
// An unknown template is reported in the response rather than as an error.
func (s *sentEmailService) TemplatePrefill(ctx context.Context, templateID int) (*models.TemplateFetchResponse, error) {
	parts, err := s.templates.GetTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &models.TemplateFetchResponse{Success: false, Error: "Template not found"}, nil
		}
		return nil, err
	}
	return &models.TemplateFetchResponse{Success: true, Subject: parts.Subject, Body: parts.Body}, nil
}

// Draft returns the initial values of a new sent email: the active custom
// variable defaults and, when templateID resolves, the template's content.
func (s *sentEmailService) Draft(ctx context.Context, templateID *int) (*models.SentEmailDraft, error) {
	defaults, err := s.defaultVariables(ctx)
	if err != nil {
		return nil, err
	}

	draft := &models.SentEmailDraft{CustomVariables: defaults}
	if templateID == nil {
		return draft, nil
	}

	parts, err := s.templates.GetTemplateByID(ctx, *templateID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return draft, nil
		}
		return nil, err
	}

	id := *templateID
	draft.TemplateID = &id
	draft.Subject = parts.Subject
	draft.Body = parts.Body
	return draft, nil
}

func (s *sentEmailService) defaultVariables(ctx context.Context) (map[string]any, error) {
	defaults, err := s.variables.GetActiveDefaults(ctx)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]any, len(defaults))
	for k, v := range defaults {
		vars[k] = v
	}
	return vars, nil
}

// checkRecipients resolves the main, CC and BCC recipients and validates their overlap
func (s *sentEmailService) checkRecipients(ctx context.Context, recipientID int, ccIDs, bccIDs []int) error {
	if _, err := s.recipients.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.NewValidationError(fmt.Sprintf("Recipient %d does not exist.", recipientID))
		}
		return err
	}

	cc, err := s.resolveRecipients(ctx, ccIDs)
	if err != nil {
		return err
	}
	bcc, err := s.resolveRecipients(ctx, bccIDs)
	if err != nil {
		return err
	}

	return ValidateRecipients(recipientID, cc, bcc)
}

// resolveRecipients loads ids in their given order and rejects unknown ones
func (s *sentEmailService) resolveRecipients(ctx context.Context, ids []int) ([]models.Recipient, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.recipients.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Recipient, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	ordered := make([]models.Recipient, 0, len(ids))
	var errs fieldErrors
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			errs.add(fmt.Sprintf("Recipient %d does not exist.", id))
			continue
		}
		ordered = append(ordered, r)
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return ordered, nil
}

func (s *sentEmailService) checkTemplate(ctx context.Context, id int) error {
	exists, err := s.templates.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewValidationError(fmt.Sprintf("Template %d does not exist.", id))
	}
	return nil
}

func recipientIDs(list []models.Recipient) []int {
	ids := make([]int, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	return ids
}
