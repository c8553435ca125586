package models

import "time"

// TemplateType is an operator-defined category of email templates
type TemplateType struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// CreateTemplateTypeRequest represents a request to create a template type
type CreateTemplateTypeRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UpdateTemplateTypeRequest represents a partial update of a template type
type UpdateTemplateTypeRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
