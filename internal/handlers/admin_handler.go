package handlers

import (
	"context"
	"io"

	"github.com/go-chi/chi/v5"
	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// PositionsService is the interface that wraps methods for the position catalog
type PositionsService interface {
	Create(ctx context.Context, req *models.CreatePositionRequest) (int, error)
	GetByID(ctx context.Context, id int) (*models.Position, error)
	GetAll(ctx context.Context, filter models.ListFilter) ([]models.Position, error)
	Update(ctx context.Context, id int, req *models.UpdatePositionRequest) error
	Delete(ctx context.Context, id int) error
}

// TemplateTypesService is the interface that wraps methods for the template type catalog
type TemplateTypesService interface {
	Create(ctx context.Context, req *models.CreateTemplateTypeRequest) (int, error)
	GetByID(ctx context.Context, id int) (*models.TemplateType, error)
	GetAll(ctx context.Context, filter models.ListFilter) ([]models.TemplateType, error)
	Update(ctx context.Context, id int, req *models.UpdateTemplateTypeRequest) error
	Delete(ctx context.Context, id int) error
}

// CustomVariablesService is the interface that wraps methods for the custom variable catalog
type CustomVariablesService interface {
	Create(ctx context.Context, req *models.CreateCustomVariableRequest) (int, error)
	GetByID(ctx context.Context, id int) (*models.CustomVariableView, error)
	GetAll(ctx context.Context, filter models.ListFilter) ([]models.CustomVariableView, error)
	Update(ctx context.Context, id int, req *models.UpdateCustomVariableRequest) error
	Delete(ctx context.Context, id int) error
}

// EmailTemplatesService is the interface that wraps methods for the template catalog
type EmailTemplatesService interface {
	Create(ctx context.Context, req *models.CreateEmailTemplateRequest) (int, error)
	GetByID(ctx context.Context, id int) (*models.EmailTemplate, error)
	GetAll(ctx context.Context, filter models.EmailTemplateFilter) ([]models.EmailTemplateListItem, error)
	Update(ctx context.Context, id int, req *models.UpdateEmailTemplateRequest) error
	Delete(ctx context.Context, id int) error
}

// RecipientsService is the interface that wraps methods for the recipient directory
type RecipientsService interface {
	Create(ctx context.Context, req *models.CreateRecipientRequest) (int, error)
	GetByID(ctx context.Context, id int) (*models.Recipient, error)
	GetAll(ctx context.Context, filter models.RecipientFilter) ([]models.RecipientListItem, error)
	Update(ctx context.Context, id int, req *models.UpdateRecipientRequest) error
	Delete(ctx context.Context, id int) error
}

// SentEmailsService is the interface that wraps methods for the sent email ledger.
//
// Create and Update validate recipients (and on create, attachments) before anything is
// persisted and return a *models.ValidationError listing every failure.
// Dispatch, BulkSend and Populate report transmission outcomes in their results;
// a returned error means the ledger itself could not be read or written.
type SentEmailsService interface {
	Create(ctx context.Context, req *models.CreateSentEmailRequest, files []models.AttachmentUpload) (*models.SaveSentEmailResponse, error)
	Update(ctx context.Context, id int, req *models.UpdateSentEmailRequest) (*models.SaveSentEmailResponse, error)
	GetByID(ctx context.Context, id int) (*models.SentEmail, error)
	GetAll(ctx context.Context, filter models.SentEmailFilter) ([]models.SentEmailListItem, error)
	Delete(ctx context.Context, id int) error
	OpenAttachment(ctx context.Context, sentEmailID, attachmentID int) (*models.SentEmailAttachment, io.ReadCloser, error)
	TemplatePrefill(ctx context.Context, templateID int) (*models.TemplateFetchResponse, error)
	Draft(ctx context.Context, templateID *int) (*models.SentEmailDraft, error)
	Dispatch(ctx context.Context, id int) (*models.SendResult, error)
	BulkSend(ctx context.Context, ids []int) (*models.BulkSendResult, error)
	Populate(ctx context.Context, ids []int) (*models.ActionMessage, error)
}

// AdminServices groups the services behind the admin API
type AdminServices struct {
	Positions       PositionsService
	TemplateTypes   TemplateTypesService
	CustomVariables CustomVariablesService
	Templates       EmailTemplatesService
	Recipients      RecipientsService
	SentEmails      SentEmailsService
}

// AdminHandler handles the admin API requests
type AdminHandler struct {
	BaseHandler
	positions       PositionsService
	templateTypes   TemplateTypesService
	customVariables CustomVariablesService
	templates       EmailTemplatesService
	recipients      RecipientsService
	sentEmails      SentEmailsService
	maxUploadMemory int64
}

// NewAdminHandler creates a new admin handler. maxUploadMemory bounds the part of a
// multipart body kept in memory; larger files spill to temporary files.
func NewAdminHandler(svc AdminServices, maxUploadMemory int64, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		positions:       svc.Positions,
		templateTypes:   svc.TemplateTypes,
		customVariables: svc.CustomVariables,
		templates:       svc.Templates,
		recipients:      svc.Recipients,
		sentEmails:      svc.SentEmails,
		maxUploadMemory: maxUploadMemory,
	}
}

// RegisterRoutes registers all admin handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Route("/positions", func(r chi.Router) {
			r.Get("/", h.ListPositions)
			r.Post("/", h.CreatePosition)
			r.Get("/{id}", h.GetPosition)
			r.Patch("/{id}", h.UpdatePosition)
			r.Delete("/{id}", h.DeletePosition)
		})
		r.Route("/template-types", func(r chi.Router) {
			r.Get("/", h.ListTemplateTypes)
			r.Post("/", h.CreateTemplateType)
			r.Get("/{id}", h.GetTemplateType)
			r.Patch("/{id}", h.UpdateTemplateType)
			r.Delete("/{id}", h.DeleteTemplateType)
		})
		r.Route("/custom-variables", func(r chi.Router) {
			r.Get("/", h.ListCustomVariables)
			r.Post("/", h.CreateCustomVariable)
			r.Get("/{id}", h.GetCustomVariable)
			r.Patch("/{id}", h.UpdateCustomVariable)
			r.Delete("/{id}", h.DeleteCustomVariable)
		})
		r.Route("/email-templates", func(r chi.Router) {
			r.Get("/", h.ListEmailTemplates)
			r.Post("/", h.CreateEmailTemplate)
			r.Get("/{id}", h.GetEmailTemplate)
			r.Patch("/{id}", h.UpdateEmailTemplate)
			r.Delete("/{id}", h.DeleteEmailTemplate)
		})
		r.Route("/recipients", func(r chi.Router) {
			r.Get("/", h.ListRecipients)
			r.Post("/", h.CreateRecipient)
			r.Get("/{id}", h.GetRecipient)
			r.Patch("/{id}", h.UpdateRecipient)
			r.Delete("/{id}", h.DeleteRecipient)
		})
		r.Route("/sent-emails", func(r chi.Router) {
			r.Get("/", h.ListSentEmails)
			r.Post("/", h.CreateSentEmail)
			r.Get("/draft", h.GetDraft)
			r.Get("/template/{id}", h.GetTemplatePrefill)
			r.Post("/actions/send", h.BulkSend)
			r.Post("/actions/populate", h.Populate)
			r.Get("/{id}", h.GetSentEmail)
			r.Patch("/{id}", h.UpdateSentEmail)
			r.Delete("/{id}", h.DeleteSentEmail)
			r.Post("/{id}/send", h.SendSentEmail)
			r.Get("/{id}/attachments/{attachmentId}", h.DownloadAttachment)
		})
	})
}
