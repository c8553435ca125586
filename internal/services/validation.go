package services

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/interviewmail/backend/internal/models"
)

// MaxAttachments is the number of files a single sent email may carry
const MaxAttachments = 20

// Field limits of the stored columns
const (
	maxPositionName     = 200
	maxTemplateTypeName = 100
	maxTemplateName     = 200
	maxSubject          = 300
	maxRecipientName    = 200
	maxVariableName     = 100
	maxVariableDisplay  = 150
	maxVariableDefault  = 500
	maxFilename         = 255
	maxContentType      = 100
)

const mib = 1024 * 1024

// ValidateRecipients checks that the main recipient appears in neither copy list
// and that no recipient is both copied and blind-copied. Every violation is reported.
func ValidateRecipients(recipientID int, cc, bcc []models.Recipient) error {
	var messages []string

	if containsRecipient(cc, recipientID) {
		messages = append(messages, "The main recipient cannot also be in the CC list.")
	}
	if containsRecipient(bcc, recipientID) {
		messages = append(messages, "The main recipient cannot also be in the BCC list.")
	}

	var overlap []string
	for _, r := range cc {
		if containsRecipient(bcc, r.ID) {
			overlap = append(overlap, r.Name)
		}
	}
	if len(overlap) > 0 {
		messages = append(messages, fmt.Sprintf("The following recipients cannot be in both CC and BCC lists: %s", strings.Join(overlap, ", ")))
	}

	if len(messages) > 0 {
		return models.NewValidationError(messages...)
	}
	return nil
}

// ValidateAttachments checks the names, per-file and total size limits of the
// files uploaded with a new sent email. The first violation aborts the check.
func ValidateAttachments(files []models.AttachmentUpload, maxFileSize, maxTotalSize int64) error {
	if len(files) > MaxAttachments {
		return models.NewValidationError(fmt.Sprintf("At most %d attachments are allowed per email.", MaxAttachments))
	}

	var total int64
	for _, f := range files {
		if utf8.RuneCountInString(f.Filename) > maxFilename {
			return models.NewValidationError(fmt.Sprintf("File name '%s...' must be at most %d characters.", truncateRunes(f.Filename, 40), maxFilename))
		}
		if len(f.ContentType) > maxContentType {
			return models.NewValidationError(fmt.Sprintf("File '%s' has a content type longer than %d characters.", f.Filename, maxContentType))
		}
		if f.Size > maxFileSize {
			return models.NewValidationError(fmt.Sprintf("File '%s' exceeds %s limit (%.1fMB)", f.Filename, formatLimit(maxFileSize), float64(f.Size)/mib))
		}
		total += f.Size
	}

	if total > maxTotalSize {
		return models.NewValidationError(fmt.Sprintf("Total attachment size exceeds %s limit (%.1fMB)", formatLimit(maxTotalSize), float64(total)/mib))
	}

	return nil
}

// formatLimit renders a byte limit the way the operator configured it, e.g. 5MB
func formatLimit(limit int64) string {
	if limit%mib == 0 {
		return fmt.Sprintf("%dMB", limit/mib)
	}
	return fmt.Sprintf("%.1fMB", float64(limit)/mib)
}

func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func containsRecipient(list []models.Recipient, id int) bool {
	for _, r := range list {
		if r.ID == id {
			return true
		}
	}
	return false
}

// fieldErrors accumulates request validation messages
type fieldErrors []string

func (f *fieldErrors) required(field, value string, max int) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		*f = append(*f, fmt.Sprintf("%s is required.", field))
	case utf8.RuneCountInString(value) > max:
		*f = append(*f, fmt.Sprintf("%s must be at most %d characters.", field, max))
	}
}

func (f *fieldErrors) optional(field string, value *string, max int) {
	if value != nil {
		f.required(field, *value, max)
	}
}

func (f *fieldErrors) maxLength(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		*f = append(*f, fmt.Sprintf("%s must be at most %d characters.", field, max))
	}
}

func (f *fieldErrors) email(value string) {
	if _, err := mail.ParseAddress(value); err != nil || strings.ContainsAny(value, "<> ") {
		*f = append(*f, "Enter a valid email address.")
	}
}

func (f *fieldErrors) add(message string) {
	*f = append(*f, message)
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return models.NewValidationError(f...)
}

// normalizePage applies the default paging of list endpoints
func normalizePage(page, count int) (int, int) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = 20
	}
	return page, count
}

func boolOrTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// uniqueIDs drops duplicates and non-positive ids while keeping order
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
