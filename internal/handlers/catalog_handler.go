package handlers

import (
	"net/http"

	"github.com/interviewmail/backend/internal/models"
)

// ListPositions handles GET /admin/positions
// @Summary List positions
// @Description Get paginated list of positions with optional search and active filter
// @Tags positions
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Param search query string false "Search in name and description"
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} models.Position
// @Failure 400 {object} map[string][]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /admin/positions [get]
func (h *AdminHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		h.RespondServiceError(w, err, "invalid position filter")
		return
	}

	positions, err := h.positions.GetAll(r.Context(), filter)
	if err != nil {
		h.RespondServiceError(w, err, "failed to list positions")
		return
	}

	h.RespondJSON(w, http.StatusOK, positions)
}

// GetPosition handles GET /admin/positions/{id}
// @Summary Get position by ID
// @Tags positions
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} models.Position
// @Failure 400 {object} map[string]string "Invalid position ID"
// @Failure 404 {object} map[string]string "Position not found"
// @Security BearerAuth
// @Router /admin/positions/{id} [get]
func (h *AdminHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	position, err := h.positions.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get position")
		return
	}

	h.RespondJSON(w, http.StatusOK, position)
}

// CreatePosition handles POST /admin/positions
// @Summary Create a position
// @Tags positions
// @Accept json
// @Produce json
// @Param request body models.CreatePositionRequest true "Position"
// @Success 201 {object} map[string]any "Position created"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 409 {object} map[string]string "Name already used"
// @Security BearerAuth
// @Router /admin/positions [post]
func (h *AdminHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePositionRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.positions.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create position")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{"id": id, "message": "Position created successfully"})
}

// UpdatePosition handles PATCH /admin/positions/{id}
// @Summary Update a position
// @Description Partially update a position; is_active can be toggled on its own
// @Tags positions
// @Accept json
// @Param id path int true "Position ID"
// @Param request body models.UpdatePositionRequest true "Fields to update"
// @Success 204 "Position updated"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 404 {object} map[string]string "Position not found"
// @Failure 409 {object} map[string]string "Name already used"
// @Security BearerAuth
// @Router /admin/positions/{id} [patch]
func (h *AdminHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePositionRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.positions.Update(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update position")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletePosition handles DELETE /admin/positions/{id}
// @Summary Delete a position
// @Description Recipients holding the position keep existing without one
// @Tags positions
// @Param id path int true "Position ID"
// @Success 204 "Position deleted"
// @Failure 404 {object} map[string]string "Position not found"
// @Security BearerAuth
// @Router /admin/positions/{id} [delete]
func (h *AdminHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.positions.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete position")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTemplateTypes handles GET /admin/template-types
// @Summary List template types
// @Tags template-types
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Param search query string false "Search in name"
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} models.TemplateType
// @Security BearerAuth
// @Router /admin/template-types [get]
func (h *AdminHandler) ListTemplateTypes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		h.RespondServiceError(w, err, "invalid template type filter")
		return
	}

	types, err := h.templateTypes.GetAll(r.Context(), filter)
	if err != nil {
		h.RespondServiceError(w, err, "failed to list template types")
		return
	}

	h.RespondJSON(w, http.StatusOK, types)
}

// GetTemplateType handles GET /admin/template-types/{id}
// @Summary Get template type by ID
// @Tags template-types
// @Produce json
// @Param id path int true "Template type ID"
// @Success 200 {object} models.TemplateType
// @Failure 404 {object} map[string]string "Template type not found"
// @Security BearerAuth
// @Router /admin/template-types/{id} [get]
func (h *AdminHandler) GetTemplateType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	templateType, err := h.templateTypes.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get template type")
		return
	}

	h.RespondJSON(w, http.StatusOK, templateType)
}

// CreateTemplateType handles POST /admin/template-types
// @Summary Create a template type
// @Tags template-types
// @Accept json
// @Produce json
// @Param request body models.CreateTemplateTypeRequest true "Template type"
// @Success 201 {object} map[string]any "Template type created"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 409 {object} map[string]string "Name already used"
// @Security BearerAuth
// @Router /admin/template-types [post]
func (h *AdminHandler) CreateTemplateType(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTemplateTypeRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.templateTypes.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create template type")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{"id": id, "message": "Template type created successfully"})
}

// UpdateTemplateType handles PATCH /admin/template-types/{id}
// @Summary Update a template type
// @Tags template-types
// @Accept json
// @Param id path int true "Template type ID"
// @Param request body models.UpdateTemplateTypeRequest true "Fields to update"
// @Success 204 "Template type updated"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 404 {object} map[string]string "Template type not found"
// @Security BearerAuth
// @Router /admin/template-types/{id} [patch]
func (h *AdminHandler) UpdateTemplateType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateTemplateTypeRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.templateTypes.Update(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update template type")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTemplateType handles DELETE /admin/template-types/{id}
// @Summary Delete a template type
// @Description A template type still used by email templates cannot be deleted
// @Tags template-types
// @Param id path int true "Template type ID"
// @Success 204 "Template type deleted"
// @Failure 404 {object} map[string]string "Template type not found"
// @Failure 409 {object} map[string]string "Template type in use"
// @Security BearerAuth
// @Router /admin/template-types/{id} [delete]
func (h *AdminHandler) DeleteTemplateType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.templateTypes.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete template type")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCustomVariables handles GET /admin/custom-variables
// @Summary List custom variables
// @Description Each variable carries the placeholder token templates use for it
// @Tags custom-variables
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Param search query string false "Search in name and display name"
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} models.CustomVariableView
// @Security BearerAuth
// @Router /admin/custom-variables [get]
func (h *AdminHandler) ListCustomVariables(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		h.RespondServiceError(w, err, "invalid custom variable filter")
		return
	}

	variables, err := h.customVariables.GetAll(r.Context(), filter)
	if err != nil {
		h.RespondServiceError(w, err, "failed to list custom variables")
		return
	}

	h.RespondJSON(w, http.StatusOK, variables)
}

// GetCustomVariable handles GET /admin/custom-variables/{id}
// @Summary Get custom variable by ID
// @Tags custom-variables
// @Produce json
// @Param id path int true "Custom variable ID"
// @Success 200 {object} models.CustomVariableView
// @Failure 404 {object} map[string]string "Custom variable not found"
// @Security BearerAuth
// @Router /admin/custom-variables/{id} [get]
func (h *AdminHandler) GetCustomVariable(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	variable, err := h.customVariables.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get custom variable")
		return
	}

	h.RespondJSON(w, http.StatusOK, variable)
}

// CreateCustomVariable handles POST /admin/custom-variables
// @Summary Create a custom variable
// @Tags custom-variables
// @Accept json
// @Produce json
// @Param request body models.CreateCustomVariableRequest true "Custom variable"
// @Success 201 {object} map[string]any "Custom variable created"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 409 {object} map[string]string "Name already used"
// @Security BearerAuth
// @Router /admin/custom-variables [post]
func (h *AdminHandler) CreateCustomVariable(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomVariableRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.customVariables.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create custom variable")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{"id": id, "message": "Custom variable created successfully"})
}

// UpdateCustomVariable handles PATCH /admin/custom-variables/{id}
// @Summary Update a custom variable
// @Tags custom-variables
// @Accept json
// @Param id path int true "Custom variable ID"
// @Param request body models.UpdateCustomVariableRequest true "Fields to update"
// @Success 204 "Custom variable updated"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 404 {object} map[string]string "Custom variable not found"
// @Security BearerAuth
// @Router /admin/custom-variables/{id} [patch]
func (h *AdminHandler) UpdateCustomVariable(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateCustomVariableRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.customVariables.Update(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update custom variable")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCustomVariable handles DELETE /admin/custom-variables/{id}
// @Summary Delete a custom variable
// @Tags custom-variables
// @Param id path int true "Custom variable ID"
// @Success 204 "Custom variable deleted"
// @Failure 404 {object} map[string]string "Custom variable not found"
// @Security BearerAuth
// @Router /admin/custom-variables/{id} [delete]
func (h *AdminHandler) DeleteCustomVariable(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.customVariables.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete custom variable")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEmailTemplates handles GET /admin/email-templates
// @Summary List email templates
// @Description Each item links to a draft pre-filled with the template
// @Tags email-templates
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Param search query string false "Search in name, subject and body"
// @Param active query bool false "Filter by active flag"
// @Param template_type_id query int false "Filter by template type"
// @Success 200 {array} models.EmailTemplateListItem
// @Failure 400 {object} map[string][]string "Invalid filter"
// @Security BearerAuth
// @Router /admin/email-templates [get]
func (h *AdminHandler) ListEmailTemplates(w http.ResponseWriter, r *http.Request) {
	listFilter, err := parseListFilter(r)
	if err != nil {
		h.RespondServiceError(w, err, "invalid email template filter")
		return
	}
	typeID, err := queryInt(r, "template_type_id")
	if err != nil {
		h.RespondServiceError(w, err, "invalid email template filter")
		return
	}

	templates, err := h.templates.GetAll(r.Context(), models.EmailTemplateFilter{ListFilter: listFilter, TemplateTypeID: typeID})
	if err != nil {
		h.RespondServiceError(w, err, "failed to list email templates")
		return
	}

	h.RespondJSON(w, http.StatusOK, templates)
}

// GetEmailTemplate handles GET /admin/email-templates/{id}
// @Summary Get email template by ID
// @Tags email-templates
// @Produce json
// @Param id path int true "Email template ID"
// @Success 200 {object} models.EmailTemplate
// @Failure 404 {object} map[string]string "Email template not found"
// @Security BearerAuth
// @Router /admin/email-templates/{id} [get]
func (h *AdminHandler) GetEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	template, err := h.templates.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get email template")
		return
	}

	h.RespondJSON(w, http.StatusOK, template)
}

// CreateEmailTemplate handles POST /admin/email-templates
// @Summary Create an email template
// @Tags email-templates
// @Accept json
// @Produce json
// @Param request body models.CreateEmailTemplateRequest true "Email template"
// @Success 201 {object} map[string]any "Email template created"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Security BearerAuth
// @Router /admin/email-templates [post]
func (h *AdminHandler) CreateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmailTemplateRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.templates.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create email template")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{"id": id, "message": "Email template created successfully"})
}

// UpdateEmailTemplate handles PATCH /admin/email-templates/{id}
// @Summary Update an email template
// @Description Already composed emails keep their own subject and body
// @Tags email-templates
// @Accept json
// @Param id path int true "Email template ID"
// @Param request body models.UpdateEmailTemplateRequest true "Fields to update"
// @Success 204 "Email template updated"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 404 {object} map[string]string "Email template not found"
// @Security BearerAuth
// @Router /admin/email-templates/{id} [patch]
func (h *AdminHandler) UpdateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateEmailTemplateRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.templates.Update(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update email template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteEmailTemplate handles DELETE /admin/email-templates/{id}
// @Summary Delete an email template
// @Description Sent emails based on the template keep their content and lose the reference
// @Tags email-templates
// @Param id path int true "Email template ID"
// @Success 204 "Email template deleted"
// @Failure 404 {object} map[string]string "Email template not found"
// @Security BearerAuth
// @Router /admin/email-templates/{id} [delete]
func (h *AdminHandler) DeleteEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.templates.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete email template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListRecipients handles GET /admin/recipients
// @Summary List recipients
// @Tags recipients
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Param search query string false "Search in name, email and notes"
// @Param active query bool false "Filter by active flag"
// @Param position_id query int false "Filter by position"
// @Success 200 {array} models.RecipientListItem
// @Failure 400 {object} map[string][]string "Invalid filter"
// @Security BearerAuth
// @Router /admin/recipients [get]
func (h *AdminHandler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	listFilter, err := parseListFilter(r)
	if err != nil {
		h.RespondServiceError(w, err, "invalid recipient filter")
		return
	}
	positionID, err := queryInt(r, "position_id")
	if err != nil {
		h.RespondServiceError(w, err, "invalid recipient filter")
		return
	}

	recipients, err := h.recipients.GetAll(r.Context(), models.RecipientFilter{ListFilter: listFilter, PositionID: positionID})
	if err != nil {
		h.RespondServiceError(w, err, "failed to list recipients")
		return
	}

	h.RespondJSON(w, http.StatusOK, recipients)
}

// GetRecipient handles GET /admin/recipients/{id}
// @Summary Get recipient by ID
// @Tags recipients
// @Produce json
// @Param id path int true "Recipient ID"
// @Success 200 {object} models.Recipient
// @Failure 404 {object} map[string]string "Recipient not found"
// @Security BearerAuth
// @Router /admin/recipients/{id} [get]
func (h *AdminHandler) GetRecipient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	recipient, err := h.recipients.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get recipient")
		return
	}

	h.RespondJSON(w, http.StatusOK, recipient)
}

// CreateRecipient handles POST /admin/recipients
// @Summary Create a recipient
// @Tags recipients
// @Accept json
// @Produce json
// @Param request body models.CreateRecipientRequest true "Recipient"
// @Success 201 {object} map[string]any "Recipient created"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 409 {object} map[string]string "Email already used"
// @Security BearerAuth
// @Router /admin/recipients [post]
func (h *AdminHandler) CreateRecipient(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecipientRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.recipients.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create recipient")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{"id": id, "message": "Recipient created successfully"})
}

// UpdateRecipient handles PATCH /admin/recipients/{id}
// @Summary Update a recipient
// @Description A position_id of 0 removes the position
// @Tags recipients
// @Accept json
// @Param id path int true "Recipient ID"
// @Param request body models.UpdateRecipientRequest true "Fields to update"
// @Success 204 "Recipient updated"
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 404 {object} map[string]string "Recipient not found"
// @Failure 409 {object} map[string]string "Email already used"
// @Security BearerAuth
// @Router /admin/recipients/{id} [patch]
func (h *AdminHandler) UpdateRecipient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateRecipientRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.recipients.Update(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update recipient")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteRecipient handles DELETE /admin/recipients/{id}
// @Summary Delete a recipient
// @Description Sent emails addressed to the recipient are deleted with it
// @Tags recipients
// @Param id path int true "Recipient ID"
// @Success 204 "Recipient deleted"
// @Failure 404 {object} map[string]string "Recipient not found"
// @Security BearerAuth
// @Router /admin/recipients/{id} [delete]
func (h *AdminHandler) DeleteRecipient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.URLParamInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.recipients.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete recipient")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
