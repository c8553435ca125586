package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/interviewmail/backend/internal/mailer"
	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// Dispatch renders a sent email, transmits it and records the outcome on the
// ledger row. Transmission failures are returned inside the result, not as an error;
// the error is reserved for a missing record or a failed status update.
func (s *sentEmailService) Dispatch(ctx context.Context, id int) (*models.SendResult, error) {
	email, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attachments, err := s.attachments.GetBySentEmailID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, email, attachments)
}

func (s *sentEmailService) dispatch(ctx context.Context, email *models.SentEmail, attachments []models.SentEmailAttachment) (*models.SendResult, error) {
	start := time.Now()
	sendErr := s.transmit(ctx, email, attachments)
	elapsed := time.Since(start)

	result := &models.SendResult{ID: email.ID}
	if sendErr != nil {
		s.logger.Error("failed to send email",
			zap.Int("sent_email_id", email.ID),
			zap.String("recipient", recipientAddress(email)),
			zap.Error(sendErr),
		)

		if err := s.repo.UpdateStatus(ctx, email.ID, models.EmailStatusFailed, sendErr.Error(), nil); err != nil {
			return nil, err
		}
		email.Status = models.EmailStatusFailed
		email.ErrorMessage = sendErr.Error()

		result.Status = models.EmailStatusFailed
		result.ErrorMessage = sendErr.Error()
		result.Message = models.ActionMessage{
			Level: models.MessageLevelError,
			Text:  fmt.Sprintf("✗ Failed to send email: %s", sendErr.Error()),
		}
	} else {
		sentAt := s.now()
		if err := s.repo.UpdateStatus(ctx, email.ID, models.EmailStatusSuccess, "", &sentAt); err != nil {
			return nil, err
		}
		email.Status = models.EmailStatusSuccess
		email.ErrorMessage = ""
		email.SentAt = sentAt

		s.logger.Info("email sent",
			zap.Int("sent_email_id", email.ID),
			zap.String("recipient", email.Recipient.Email),
			zap.Int("cc", len(email.CC)),
			zap.Int("bcc", len(email.BCC)),
			zap.Int("attachments", len(attachments)),
			zap.Duration("duration", elapsed),
		)

		result.Status = models.EmailStatusSuccess
		result.Message = models.ActionMessage{
			Level: models.MessageLevelSuccess,
			Text:  successMessage(email),
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveSend(result.Status, elapsed)
	}
	return result, nil
}

// transmit renders and sends one email. Every stored file is opened before the
// message is composed so a missing file fails the send instead of producing a
// message without it.
func (s *sentEmailService) transmit(ctx context.Context, email *models.SentEmail, attachments []models.SentEmailAttachment) error {
	if email.Recipient == nil {
		return errors.New("sent email has no recipient")
	}

	renderCtx := mailer.BuildContext(email.Recipient, email.InterviewDatetime, s.cfg.InterviewLocation, email.CustomVariables)
	subject, body := mailer.Render(email.Subject, email.Body, renderCtx)

	files := make([]mailer.Attachment, 0, len(attachments))
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for _, a := range attachments {
		rc, err := s.storage.Open(a.FilePath)
		if err != nil {
			return fmt.Errorf("attachment '%s' is not available: %w", a.Filename, err)
		}
		closers = append(closers, rc)
		files = append(files, mailer.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     rc,
		})
	}

	msg := mailer.Compose(&mailer.Envelope{
		From:        s.cfg.From,
		To:          email.Recipient.Email,
		CC:          recipientEmails(email.CC),
		BCC:         recipientEmails(email.BCC),
		Subject:     subject,
		Body:        body,
		Attachments: files,
	})

	return s.transport.Send(ctx, msg)
}

// BulkSend dispatches every selected email that has not been sent successfully yet,
// one after another. Unknown ids are ignored.
func (s *sentEmailService) BulkSend(ctx context.Context, ids []int) (*models.BulkSendResult, error) {
	ids = uniqueIDs(ids)
	result := &models.BulkSendResult{Messages: []models.ActionMessage{}}

	for _, id := range ids {
		email, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				s.logger.Warn("bulk send skipped unknown email", zap.Int("sent_email_id", id))
				continue
			}
			return nil, err
		}

		if email.Status == models.EmailStatusSuccess {
			result.Skipped++
			continue
		}

		attachments, err := s.attachments.GetBySentEmailID(ctx, id)
		if err != nil {
			return nil, err
		}

		sendResult, err := s.dispatch(ctx, email, attachments)
		if err != nil {
			return nil, err
		}
		if sendResult.Status == models.EmailStatusSuccess {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	result.NothingToDo = len(ids) > 0 && result.Skipped == len(ids)

	if result.Sent == 0 {
		result.Messages = append(result.Messages, models.ActionMessage{
			Level: models.MessageLevelWarning,
			Text:  "✓ All Selected recipients was sent before.",
		})
	}
	if result.Sent > 0 {
		result.Messages = append(result.Messages, models.ActionMessage{
			Level: models.MessageLevelSuccess,
			Text:  fmt.Sprintf("✓ Successfully sent %d email(s).", result.Sent),
		})
	}
	if result.Failed > 0 {
		result.Messages = append(result.Messages, models.ActionMessage{
			Level: models.MessageLevelError,
			Text:  fmt.Sprintf("✗ Failed to send %d email(s).", result.Failed),
		})
	}

	if s.metrics != nil {
		s.metrics.ObserveBulk(result.Skipped)
	}

	s.logger.Info("bulk send finished",
		zap.Int("selected", len(ids)),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// Populate copies the subject and body of its template into exactly one selected sent email
func (s *sentEmailService) Populate(ctx context.Context, ids []int) (*models.ActionMessage, error) {
	if len(ids) != 1 {
		return &models.ActionMessage{
			Level: models.MessageLevelError,
			Text:  fmt.Sprintf("Please select exactly one email to populate. You selected %d.", len(ids)),
		}, nil
	}

	email, err := s.repo.GetByID(ctx, ids[0])
	if err != nil {
		return nil, err
	}

	noTemplate := &models.ActionMessage{
		Level: models.MessageLevelError,
		Text:  "Selected email has no template to populate from.",
	}
	if email.TemplateID == nil {
		return noTemplate, nil
	}

	template, err := s.templates.GetByID(ctx, *email.TemplateID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return noTemplate, nil
		}
		return nil, err
	}

	if err := s.repo.UpdateContent(ctx, email.ID, template.Subject, template.Body); err != nil {
		return nil, err
	}

	return &models.ActionMessage{
		Level: models.MessageLevelSuccess,
		Text:  fmt.Sprintf("Email populated from template '%s'", template.Name),
	}, nil
}

func successMessage(email *models.SentEmail) string {
	var extra []string
	if len(email.CC) > 0 {
		extra = append(extra, "CC: "+strings.Join(recipientNames(email.CC), ", "))
	}
	if len(email.BCC) > 0 {
		extra = append(extra, "BCC: "+strings.Join(recipientNames(email.BCC), ", "))
	}

	extraText := ""
	if len(extra) > 0 {
		extraText = fmt.Sprintf(" (%s)", strings.Join(extra, "; "))
	}

	return fmt.Sprintf("✓ Email sent successfully to %s (%s)%s!", email.Recipient.Name, email.Recipient.Email, extraText)
}

func recipientAddress(email *models.SentEmail) string {
	if email.Recipient == nil {
		return ""
	}
	return email.Recipient.Email
}

func recipientEmails(list []models.Recipient) []string {
	emails := make([]string, 0, len(list))
	for _, r := range list {
		emails = append(emails, r.Email)
	}
	return emails
}

func recipientNames(list []models.Recipient) []string {
	names := make([]string, 0, len(list))
	for _, r := range list {
		names = append(names, r.Name)
	}
	return names
}
