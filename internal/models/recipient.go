package models

import "time"

// Recipient represents a candidate that can receive interview emails
type Recipient struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PositionID   *int      `json:"position_id,omitempty"`
	PositionName string    `json:"position_name,omitempty"`
	Notes        string    `json:"notes"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// RecipientListItem represents a recipient in a list response
type RecipientListItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PositionID   *int   `json:"position_id,omitempty"`
	PositionName string `json:"position_name,omitempty"`
	EmailCount   int    `json:"email_count"`
}

// RecipientFilter holds the list filters of the recipient directory
type RecipientFilter struct {
	ListFilter
	PositionID int
}

// CreateRecipientRequest represents a request to create a recipient
type CreateRecipientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	PositionID *int   `json:"position_id,omitempty"`
	Notes      string `json:"notes"`
}

// UpdateRecipientRequest represents a partial update of a recipient.
// A PositionID of 0 detaches the recipient from its position.
type UpdateRecipientRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	PositionID *int    `json:"position_id,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
