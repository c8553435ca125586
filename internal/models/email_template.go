package models

import "time"

// EmailTemplate is a reusable subject/body pair; both may contain {{token}} placeholders
type EmailTemplate struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	TemplateTypeID   int       `json:"template_type_id"`
	TemplateTypeName string    `json:"template_type_name,omitempty"`
	Subject          string    `json:"subject"`
	Body             string    `json:"body"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

// EmailTemplateListItem represents an email template in a list response
type EmailTemplateListItem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	TemplateTypeID   int    `json:"template_type_id"`
	TemplateTypeName string `json:"template_type_name"`
	Subject          string `json:"subject"`
	IsActive         bool   `json:"is_active"`
	CreateEmailURL   string `json:"create_email_url"`
}

// EmailTemplateFilter holds the list filters of the template catalog
type EmailTemplateFilter struct {
	ListFilter
	TemplateTypeID int
}

// CreateEmailTemplateRequest represents a request to create an email template
type CreateEmailTemplateRequest struct {
	Name           string `json:"name"`
	TemplateTypeID int    `json:"template_type_id"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

// UpdateEmailTemplateRequest represents a partial update of an email template
type UpdateEmailTemplateRequest struct {
	Name           *string `json:"name,omitempty"`
	TemplateTypeID *int    `json:"template_type_id,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	Body           *string `json:"body,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// EmailTemplateParts is the raw subject and body of a template, used for pre-filling drafts
type EmailTemplateParts struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TemplateFetchResponse is the body of the template pre-fill endpoint
type TemplateFetchResponse struct {
	Success bool   `json:"success"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
	Error   string `json:"error,omitempty"`
}
