package models

import (
	"fmt"
	"time"
)

// CustomVariable is a named placeholder with a default value
type CustomVariable struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	DefaultValue string    `json:"default_value"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// Placeholder returns the token form of the variable, e.g. {{company_name}}
func (v CustomVariable) Placeholder() string {
	return fmt.Sprintf("{{%s}}", v.Name)
}

// CustomVariableView is a custom variable together with its placeholder form
type CustomVariableView struct {
	CustomVariable
	Placeholder string `json:"placeholder"`
}

// CreateCustomVariableRequest represents a request to create a custom variable
type CreateCustomVariableRequest struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	DefaultValue string `json:"default_value"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// UpdateCustomVariableRequest represents a partial update of a custom variable
type UpdateCustomVariableRequest struct {
	Name         *string `json:"name,omitempty"`
	DisplayName  *string `json:"display_name,omitempty"`
	DefaultValue *string `json:"default_value,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
