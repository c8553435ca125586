package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/interviewmail/backend/internal/models"
	"gopkg.in/mail.v2"
)

// mockSentEmailRepository is an in-memory implementation of SentEmailRepository
type mockSentEmailRepository struct {
	emails        map[int]*models.SentEmail
	nextID        int
	createErr     error
	getErr        error
	updateErr     error
	statusErr     error
	createdCC     []int
	createdBCC    []int
	lastUpdate    *models.UpdateSentEmailRequest
	statusUpdates []statusUpdate
	deleted       []int
	// people fills Recipient on read like the recipient join does
	people *mockRecipientLookup
}

type statusUpdate struct {
	id           int
	status       models.EmailStatus
	errorMessage string
	sentAt       *time.Time
}

func newMockSentEmailRepository(emails ...*models.SentEmail) *mockSentEmailRepository {
	m := &mockSentEmailRepository{emails: map[int]*models.SentEmail{}, nextID: 100}
	for _, e := range emails {
		m.emails[e.ID] = e
	}
	return m
}

func (m *mockSentEmailRepository) Create(ctx context.Context, email *models.SentEmail, ccIDs, bccIDs []int) error {
	if m.createErr != nil {
		return m.createErr
	}
	email.ID = m.nextID
	m.nextID++
	m.createdCC = ccIDs
	m.createdBCC = bccIDs
	stored := *email
	m.emails[email.ID] = &stored
	return nil
}

func (m *mockSentEmailRepository) GetByID(ctx context.Context, id int) (*models.SentEmail, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	email, ok := m.emails[id]
	if !ok {
		return nil, fmt.Errorf("sent email %w", models.ErrNotFound)
	}
	copied := *email
	if copied.Recipient == nil && m.people != nil {
		if r, ok := m.people.recipients[copied.RecipientID]; ok {
			copied.Recipient = &r
		}
	}
	return &copied, nil
}

func (m *mockSentEmailRepository) GetAll(ctx context.Context, filter models.SentEmailFilter) ([]models.SentEmailListItem, error) {
	items := []models.SentEmailListItem{}
	for _, e := range m.emails {
		items = append(items, models.SentEmailListItem{ID: e.ID, Subject: e.Subject, Status: e.Status})
	}
	return items, nil
}

func (m *mockSentEmailRepository) Update(ctx context.Context, id int, req *models.UpdateSentEmailRequest) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastUpdate = req
	return nil
}

func (m *mockSentEmailRepository) UpdateStatus(ctx context.Context, id int, status models.EmailStatus, errorMessage string, sentAt *time.Time) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.statusUpdates = append(m.statusUpdates, statusUpdate{id: id, status: status, errorMessage: errorMessage, sentAt: sentAt})
	if e, ok := m.emails[id]; ok {
		e.Status = status
		e.ErrorMessage = errorMessage
		if sentAt != nil {
			e.SentAt = *sentAt
		}
	}
	return nil
}

func (m *mockSentEmailRepository) UpdateContent(ctx context.Context, id int, subject, body string) error {
	e, ok := m.emails[id]
	if !ok {
		return fmt.Errorf("sent email %w", models.ErrNotFound)
	}
	e.Subject = subject
	e.Body = body
	return nil
}

func (m *mockSentEmailRepository) Delete(ctx context.Context, id int) error {
	if _, ok := m.emails[id]; !ok {
		return fmt.Errorf("sent email %w", models.ErrNotFound)
	}
	delete(m.emails, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// mockAttachmentRepository is an in-memory implementation of AttachmentRepository
type mockAttachmentRepository struct {
	byEmail   map[int][]models.SentEmailAttachment
	createErr error
	created   []models.SentEmailAttachment
}

func newMockAttachmentRepository() *mockAttachmentRepository {
	return &mockAttachmentRepository{byEmail: map[int][]models.SentEmailAttachment{}}
}

func (m *mockAttachmentRepository) Create(ctx context.Context, attachment *models.SentEmailAttachment) error {
	if m.createErr != nil {
		return m.createErr
	}
	attachment.ID = len(m.created) + 1
	m.created = append(m.created, *attachment)
	m.byEmail[attachment.SentEmailID] = append(m.byEmail[attachment.SentEmailID], *attachment)
	return nil
}

func (m *mockAttachmentRepository) GetBySentEmailID(ctx context.Context, sentEmailID int) ([]models.SentEmailAttachment, error) {
	return append([]models.SentEmailAttachment{}, m.byEmail[sentEmailID]...), nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, sentEmailID, id int) (*models.SentEmailAttachment, error) {
	for _, a := range m.byEmail[sentEmailID] {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("attachment %w", models.ErrNotFound)
}

// mockRecipientLookup resolves recipients from a fixed set
type mockRecipientLookup struct {
	recipients map[int]models.Recipient
	err        error
}

func newMockRecipientLookup(recipients ...models.Recipient) *mockRecipientLookup {
	m := &mockRecipientLookup{recipients: map[int]models.Recipient{}}
	for _, r := range recipients {
		m.recipients[r.ID] = r
	}
	return m
}

func (m *mockRecipientLookup) GetByID(ctx context.Context, id int) (*models.Recipient, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.recipients[id]
	if !ok {
		return nil, fmt.Errorf("recipient %w", models.ErrNotFound)
	}
	return &r, nil
}

func (m *mockRecipientLookup) GetByIDs(ctx context.Context, ids []int) ([]models.Recipient, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Recipient{}
	for _, id := range ids {
		if r, ok := m.recipients[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// mockTemplateLookup resolves templates from a fixed set
type mockTemplateLookup struct {
	templates map[int]*models.EmailTemplate
	err       error
}

func newMockTemplateLookup(templates ...*models.EmailTemplate) *mockTemplateLookup {
	m := &mockTemplateLookup{templates: map[int]*models.EmailTemplate{}}
	for _, t := range templates {
		m.templates[t.ID] = t
	}
	return m
}

func (m *mockTemplateLookup) GetByID(ctx context.Context, id int) (*models.EmailTemplate, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.templates[id]
	if !ok {
		return nil, fmt.Errorf("email template %w", models.ErrNotFound)
	}
	return t, nil
}

func (m *mockTemplateLookup) GetTemplateByID(ctx context.Context, id int) (*models.EmailTemplateParts, error) {
	t, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.EmailTemplateParts{Subject: t.Subject, Body: t.Body}, nil
}

func (m *mockTemplateLookup) ExistsByID(ctx context.Context, id int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.templates[id]
	return ok, nil
}

// mockVariableDefaults returns fixed custom variable defaults
type mockVariableDefaults struct {
	defaults map[string]string
	err      error
}

func (m *mockVariableDefaults) GetActiveDefaults(ctx context.Context) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.defaults, nil
}

// mockStorage keeps attachment files in memory
type mockStorage struct {
	files   map[string][]byte
	saveErr error
	deleted []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: map[string][]byte{}}
}

func (m *mockStorage) Save(originalName string, r io.Reader) (string, int64, error) {
	if m.saveErr != nil {
		return "", 0, m.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	path := fmt.Sprintf("email_attachments/%d-%s", len(m.files)+1, originalName)
	m.files[path] = data
	return path, int64(len(data)), nil
}

func (m *mockStorage) Open(path string) (io.ReadCloser, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, errors.New("file does not exist")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *mockStorage) Delete(path string) error {
	delete(m.files, path)
	m.deleted = append(m.deleted, path)
	return nil
}

// mockTransport records every message it is asked to send
type mockTransport struct {
	err      error
	messages []string
	bcc      [][]string
	subjects []string
}

func (m *mockTransport) Send(ctx context.Context, msg *mail.Message) error {
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return err
	}
	m.messages = append(m.messages, buf.String())
	m.bcc = append(m.bcc, msg.GetHeader("Bcc"))
	m.subjects = append(m.subjects, msg.GetHeader("Subject")...)
	return m.err
}
