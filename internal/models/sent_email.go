package models

import "time"

// EmailStatus is the delivery state of a sent email
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSuccess EmailStatus = "success"
	EmailStatusFailed  EmailStatus = "failed"
)

// IsValid reports whether s is one of the known statuses
func (s EmailStatus) IsValid() bool {
	switch s {
	case EmailStatusPending, EmailStatusSuccess, EmailStatusFailed:
		return true
	}
	return false
}

// SentEmail is a ledger entry: one composed email and the outcome of its last send attempt.
// Subject and Body are owned by the record and never follow later template edits.
type SentEmail struct {
	ID                int                   `json:"id"`
	RecipientID       int                   `json:"recipient_id"`
	Recipient         *Recipient            `json:"recipient,omitempty"`
	CC                []Recipient           `json:"cc_recipients"`
	BCC               []Recipient           `json:"bcc_recipients"`
	TemplateID        *int                  `json:"template_id,omitempty"`
	Subject           string                `json:"subject"`
	Body              string                `json:"body"`
	InterviewDatetime *time.Time            `json:"interview_datetime,omitempty"`
	CustomVariables   map[string]any        `json:"custom_variables"`
	SentAt            time.Time             `json:"sent_at"`
	Status            EmailStatus           `json:"status"`
	ErrorMessage      string                `json:"error_message"`
	Attachments       []SentEmailAttachment `json:"attachments"`
	CreatedAt         time.Time             `json:"created_at,omitempty"`
	UpdatedAt         time.Time             `json:"updated_at,omitempty"`
}

// SentEmailListItem represents a sent email in a list response
type SentEmailListItem struct {
	ID              int         `json:"id"`
	RecipientID     int         `json:"recipient_id"`
	RecipientName   string      `json:"recipient_name"`
	RecipientEmail  string      `json:"recipient_email"`
	TemplateID      *int        `json:"template_id,omitempty"`
	Subject         string      `json:"subject"`
	Status          EmailStatus `json:"status"`
	SentAt          time.Time   `json:"sent_at"`
	AttachmentCount int         `json:"attachment_count"`
}

// SentEmailFilter holds the list filters of the ledger
type SentEmailFilter struct {
	Page        int
	Count       int
	Search      string
	Status      EmailStatus
	TemplateID  int
	RecipientID int
	SentAfter   *time.Time
	SentBefore  *time.Time
}

// CreateSentEmailRequest represents a request to compose a new email
type CreateSentEmailRequest struct {
	RecipientID       int            `json:"recipient_id"`
	CCRecipientIDs    []int          `json:"cc_recipient_ids,omitempty"`
	BCCRecipientIDs   []int          `json:"bcc_recipient_ids,omitempty"`
	TemplateID        *int           `json:"template_id,omitempty"`
	Subject           string         `json:"subject"`
	Body              string         `json:"body"`
	InterviewDatetime *time.Time     `json:"interview_datetime,omitempty"`
	CustomVariables   map[string]any `json:"custom_variables,omitempty"`
	Send              bool           `json:"send,omitempty"`
}

// UpdateSentEmailRequest represents a partial update of a composed email.
// A TemplateID of 0 clears the template reference.
type UpdateSentEmailRequest struct {
	RecipientID       *int            `json:"recipient_id,omitempty"`
	CCRecipientIDs    *[]int          `json:"cc_recipient_ids,omitempty"`
	BCCRecipientIDs   *[]int          `json:"bcc_recipient_ids,omitempty"`
	TemplateID        *int            `json:"template_id,omitempty"`
	Subject           *string         `json:"subject,omitempty"`
	Body              *string         `json:"body,omitempty"`
	InterviewDatetime *time.Time      `json:"interview_datetime,omitempty"`
	CustomVariables   *map[string]any `json:"custom_variables,omitempty"`
	Send              bool            `json:"send,omitempty"`
}

// SentEmailDraft holds the initial values of a new email
type SentEmailDraft struct {
	TemplateID      *int           `json:"template_id,omitempty"`
	Subject         string         `json:"subject"`
	Body            string         `json:"body"`
	CustomVariables map[string]any `json:"custom_variables"`
}

// ActionRequest selects sent emails for an admin action
type ActionRequest struct {
	IDs []int `json:"ids"`
}

// MessageLevel classifies an operator notice
type MessageLevel string

const (
	MessageLevelSuccess MessageLevel = "success"
	MessageLevelWarning MessageLevel = "warning"
	MessageLevelError   MessageLevel = "error"
)

// ActionMessage is a notice shown to the operator after an action
type ActionMessage struct {
	Level MessageLevel `json:"level"`
	Text  string       `json:"text"`
}

// SendResult is the outcome of dispatching a single sent email
type SendResult struct {
	ID           int           `json:"id"`
	Status       EmailStatus   `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Message      ActionMessage `json:"message"`
}

// BulkSendResult is the outcome of the bulk send action
type BulkSendResult struct {
	Sent        int             `json:"sent"`
	Failed      int             `json:"failed"`
	Skipped     int             `json:"skipped"`
	NothingToDo bool            `json:"nothing_to_do"`
	Messages    []ActionMessage `json:"messages"`
}

// SaveSentEmailResponse is returned after creating or updating a sent email
type SaveSentEmailResponse struct {
	ID   int         `json:"id"`
	Send *SendResult `json:"send,omitempty"`
}
