package models

import (
	"fmt"
	"io"
	"time"
)

// SentEmailAttachment is a stored file attached to a sent email
type SentEmailAttachment struct {
	ID          int       `json:"id"`
	SentEmailID int       `json:"sent_email_id"`
	FilePath    string    `json:"-"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	SizeDisplay string    `json:"size_display"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// AttachmentUpload is an incoming file that has not been stored yet
type AttachmentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// FormatSize renders a byte count the way the admin lists show it
func FormatSize(size int64) string {
	switch {
	case size <= 0:
		return "N/A"
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
