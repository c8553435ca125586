package handlers

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/interviewmail/backend/internal/middlewares"
	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// ListSentEmails handles GET /admin/sent-emails
// @Summary List sent emails
// @Description Paginated ledger, newest first
// @Tags sent-emails
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Param search query string false "Search in recipient name and email, subject and body"
// @Param status query string false "pending, success or failed"
// @Param template_id query int false "Filter by template"
// @Param recipient_id query int false "Filter by main recipient"
// @Param sent_after query string false "Lower bound of sent_at (YYYY-MM-DD or RFC 3339)"
// @Param sent_before query string false "Upper bound of sent_at (YYYY-MM-DD or RFC 3339)"
// @Success 200 {array} models.SentEmailListItem
// @Failure 400 {object} map[string][]string "Invalid filter"
// @Security BearerAuth
// @Router /admin/sent-emails [get]
func (h *AdminHandler) ListSentEmails(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSentEmailFilter(r)
	if err != nil {
		h.RespondServiceError(w, err, "invalid sent email filter")
		return
	}

	emails, err := h.sentEmails.GetAll(r.Context(), filter)
	if err != nil {
		h.RespondServiceError(w, err, "failed to list sent emails")
		return
	}

	h.RespondJSON(w, http.StatusOK, emails)
}

func parseSentEmailFilter(r *http.Request) (models.SentEmailFilter, error) {
	listFilter, err := parseListFilter(r)
	if err != nil {
		return models.SentEmailFilter{}, err
	}
	filter := models.SentEmailFilter{
		Page:   listFilter.Page,
		Count:  listFilter.Count,
		Search: listFilter.Search,
		Status: models.EmailStatus(strings.TrimSpace(r.URL.Query().Get("status"))),
	}

	if filter.TemplateID, err = queryInt(r, "template_id"); err != nil {
		return filter, err
	}
	if filter.RecipientID, err = queryInt(r, "recipient_id"); err != nil {
		return filter, err
	}
	if filter.SentAfter, err = queryTime(r, "sent_after"); err != nil {
		return filter, err
	}
	if filter.SentBefore, err = queryTime(r, "sent_before"); err != nil {
		return filter, err
	}
	return filter, nil
}

// GetSentEmail handles GET /admin/sent-emails/{id}
// @Summary Get sent email by ID
// @Description Includes the recipient, CC and BCC recipients and attachments
// @Tags sent-emails
// @Produce json
// @Param id path int true "Sent email ID"
// @Success 200 {object} models.SentEmail
// @Failure 404 {object} map[string]string "Sent email not found"
// @Security BearerAuth
// @Router /admin/sent-emails/{id} [get]
func (h *AdminHandler) GetSentEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	email, err := h.sentEmails.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get sent email")
		return
	}

	h.RespondJSON(w, http.StatusOK, email)
}

// CreateSentEmail handles POST /admin/sent-emails
// @Summary Compose an email
// @Description Accepts a JSON body, or multipart/form-data with the JSON request in the
// @Description "payload" field and attachments in "files". With send=true the email is
// @Description dispatched right after it is saved.
// @Tags sent-emails
// @Accept json,mpfd
// @Produce json
// @Param request body models.CreateSentEmailRequest false "Email (JSON requests)"
// @Param payload formData string false "Email as JSON (multipart requests)"
// @Param files formData file false "Attachments (multipart requests)"
// @Success 201 {object} models.SaveSentEmailResponse
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 413 {object} map[string]string "Request body over the upload cap"
// @Security BearerAuth
// @Router /admin/sent-emails [post]
func (h *AdminHandler) CreateSentEmail(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSentEmailRequest
	var files []models.AttachmentUpload

	if isMultipart(r) {
		if err := r.ParseMultipartForm(h.maxUploadMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				middlewares.RespondTooLarge(w, tooLarge.Limit)
				return
			}
			h.Logger.Error("failed to parse multipart form", zap.Error(err))
			h.RespondError(w, http.StatusBadRequest, "failed to parse multipart form")
			return
		}
		defer r.MultipartForm.RemoveAll()

		payload := r.FormValue("payload")
		if payload == "" {
			h.RespondError(w, http.StatusBadRequest, "payload field is required")
			return
		}
		if err := decodeJSON(strings.NewReader(payload), &req); err != nil {
			h.RespondError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		if send, err := strconv.ParseBool(r.FormValue("send")); err == nil && send {
			req.Send = true
		}

		uploads, closeAll, err := openUploads(r.MultipartForm.File["files"])
		defer closeAll()
		if err != nil {
			h.Logger.Error("failed to open uploaded file", zap.Error(err))
			h.RespondError(w, http.StatusBadRequest, "failed to read uploaded files")
			return
		}
		files = uploads
	} else if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.sentEmails.Create(r.Context(), &req, files)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create sent email")
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// openUploads opens every uploaded file. The returned func closes what was opened.
func openUploads(headers []*multipart.FileHeader) ([]models.AttachmentUpload, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	uploads := make([]models.AttachmentUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		uploads = append(uploads, models.AttachmentUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}
	return uploads, closeAll, nil
}

// UpdateSentEmail handles PATCH /admin/sent-emails/{id}
// @Summary Update a sent email
// @Description Attachments cannot be changed after creation. With send=true the email is dispatched after the update.
// @Tags sent-emails
// @Accept json
// @Produce json
// @Param id path int true "Sent email ID"
// @Param request body models.UpdateSentEmailRequest true "Fields to update"
// @Success 200 {object} models.SaveSentEmailResponse
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 404 {object} map[string]string "Sent email not found"
// @Security BearerAuth
// @Router /admin/sent-emails/{id} [patch]
func (h *AdminHandler) UpdateSentEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateSentEmailRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.sentEmails.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to update sent email")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// DeleteSentEmail handles DELETE /admin/sent-emails/{id}
// @Summary Delete a sent email
// @Description Stored attachment files are removed too
// @Tags sent-emails
// @Param id path int true "Sent email ID"
// @Success 204 "Sent email deleted"
// @Failure 404 {object} map[string]string "Sent email not found"
// @Security BearerAuth
// @Router /admin/sent-emails/{id} [delete]
func (h *AdminHandler) DeleteSentEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.sentEmails.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete sent email")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTemplatePrefill handles GET /admin/sent-emails/template/{id}
// @Summary Get template content for a draft
// @Description Returns the raw subject and body; placeholders are not substituted.
// @Description An unknown template answers 200 with success=false.
// @Tags sent-emails
// @Produce json
// @Param id path int true "Email template ID"
// @Success 200 {object} models.TemplateFetchResponse
// @Security BearerAuth
// @Router /admin/sent-emails/template/{id} [get]
func (h *AdminHandler) GetTemplatePrefill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.RespondJSON(w, http.StatusOK, &models.TemplateFetchResponse{Success: false, Error: "Template not found"})
		return
	}

	resp, err := h.sentEmails.TemplatePrefill(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to fetch template")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// GetDraft handles GET /admin/sent-emails/draft
// @Summary Get the initial values of a new email
// @Description Custom variables are seeded from the active defaults; template pre-fills subject and body
// @Tags sent-emails
// @Produce json
// @Param template query int false "Email template ID"
// @Success 200 {object} models.SentEmailDraft
// @Security BearerAuth
// @Router /admin/sent-emails/draft [get]
func (h *AdminHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	var templateID *int
	if id, err := strconv.Atoi(r.URL.Query().Get("template")); err == nil && id > 0 {
		templateID = &id
	}

	draft, err := h.sentEmails.Draft(r.Context(), templateID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to build draft")
		return
	}

	h.RespondJSON(w, http.StatusOK, draft)
}

// SendSentEmail handles POST /admin/sent-emails/{id}/send
// @Summary Send an email
// @Description Renders and transmits the email synchronously. A transmission failure is
// @Description recorded on the email and reported in the result with status failed.
// @Tags sent-emails
// @Produce json
// @Param id path int true "Sent email ID"
// @Success 200 {object} models.SendResult
// @Failure 404 {object} map[string]string "Sent email not found"
// @Security BearerAuth
// @Router /admin/sent-emails/{id}/send [post]
func (h *AdminHandler) SendSentEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	result, err := h.sentEmails.Dispatch(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to dispatch sent email")
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// BulkSend handles POST /admin/sent-emails/actions/send
// @Summary Send the selected emails
// @Description Emails already sent successfully are skipped
// @Tags sent-emails
// @Accept json
// @Produce json
// @Param request body models.ActionRequest true "Selected sent email IDs"
// @Success 200 {object} models.BulkSendResult
// @Failure 400 {object} map[string]string "Invalid request body"
// @Security BearerAuth
// @Router /admin/sent-emails/actions/send [post]
func (h *AdminHandler) BulkSend(w http.ResponseWriter, r *http.Request) {
	var req models.ActionRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.sentEmails.BulkSend(r.Context(), req.IDs)
	if err != nil {
		h.RespondServiceError(w, err, "failed to bulk send")
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// Populate handles POST /admin/sent-emails/actions/populate
// @Summary Copy template content into an email
// @Description Exactly one email must be selected
// @Tags sent-emails
// @Accept json
// @Produce json
// @Param request body models.ActionRequest true "Selected sent email ID"
// @Success 200 {object} models.ActionMessage
// @Failure 404 {object} map[string]string "Sent email not found"
// @Security BearerAuth
// @Router /admin/sent-emails/actions/populate [post]
func (h *AdminHandler) Populate(w http.ResponseWriter, r *http.Request) {
	var req models.ActionRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	msg, err := h.sentEmails.Populate(r.Context(), req.IDs)
	if err != nil {
		h.RespondServiceError(w, err, "failed to populate sent email")
		return
	}

	h.RespondJSON(w, http.StatusOK, msg)
}

// DownloadAttachment handles GET /admin/sent-emails/{id}/attachments/{attachmentId}
// @Summary Download an attachment
// @Tags sent-emails
// @Produce octet-stream
// @Param id path int true "Sent email ID"
// @Param attachmentId path int true "Attachment ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Attachment not found"
// @Security BearerAuth
// @Router /admin/sent-emails/{id}/attachments/{attachmentId} [get]
func (h *AdminHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}
	attachmentID, ok := h.URLParamInt(w, r, "attachmentId")
	if !ok {
		return
	}

	attachment, content, err := h.sentEmails.OpenAttachment(r.Context(), id, attachmentID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to open attachment")
		return
	}
	defer content.Close()

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": attachment.Filename}))
	if attachment.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(attachment.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		h.Logger.Error("failed to stream attachment",
			zap.Int("sent_email_id", id),
			zap.Int("attachment_id", attachmentID),
			zap.Error(err),
		)
	}
}
