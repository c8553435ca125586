package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/interviewmail/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	ada   = models.Recipient{ID: 1, Name: "Ada", Email: "ada@example.com", PositionName: "Engineer"}
	grace = models.Recipient{ID: 2, Name: "Grace", Email: "grace@example.com"}
	alan  = models.Recipient{ID: 3, Name: "Alan", Email: "alan@example.com"}
)

// testSentEmailEnv bundles the mocks behind a sent email service
type testSentEmailEnv struct {
	repo        *mockSentEmailRepository
	attachments *mockAttachmentRepository
	recipients  *mockRecipientLookup
	templates   *mockTemplateLookup
	variables   *mockVariableDefaults
	storage     *mockStorage
	transport   *mockTransport
	now         time.Time
}

func newTestSentEmailEnv() *testSentEmailEnv {
	return &testSentEmailEnv{
		repo:        newMockSentEmailRepository(),
		attachments: newMockAttachmentRepository(),
		recipients:  newMockRecipientLookup(ada, grace, alan),
		templates: newMockTemplateLookup(&models.EmailTemplate{
			ID:      4,
			Name:    "First interview",
			Subject: "Interview for {{position}}",
			Body:    "<p>Hi {{name}}, your interview is {{interview_datetime}}.</p>",
		}),
		variables: &mockVariableDefaults{defaults: map[string]string{"company_name": "Acme"}},
		storage:   newMockStorage(),
		transport: &mockTransport{},
		now:       time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}
}

func (e *testSentEmailEnv) service() *sentEmailService {
	e.repo.people = e.recipients
	svc := NewSentEmailService(SentEmailDependencies{
		Repo:        e.repo,
		Attachments: e.attachments,
		Recipients:  e.recipients,
		Templates:   e.templates,
		Variables:   e.variables,
		Storage:     e.storage,
		Transport:   e.transport,
	}, DispatchConfig{
		From:         "noreply@interviewmail.local",
		MaxFileSize:  testMaxFileSize,
		MaxTotalSize: testMaxTotalSize,
	}, zap.NewNop())
	svc.now = func() time.Time { return e.now }
	return svc
}

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected validation error, got %v", err)
	return validationErr.Messages
}

func TestSentEmailService_Create(t *testing.T) {
	t.Run("stores email, copies and attachments", func(t *testing.T) {
		env := newTestSentEmailEnv()
		svc := env.service()

		resp, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID:     1,
			CCRecipientIDs:  []int{2, 2},
			BCCRecipientIDs: []int{3},
			Subject:         "Interview for {{position}}",
			Body:            "Hi {{name}}",
		}, []models.AttachmentUpload{
			{Filename: "cv.pdf", ContentType: "application/pdf", Size: 4, Reader: bytes.NewReader([]byte("%PDF"))},
			{Filename: "notes.txt", Size: 2, Reader: bytes.NewReader([]byte("hi"))},
		})

		require.NoError(t, err)
		assert.Equal(t, 100, resp.ID)
		assert.Nil(t, resp.Send)
		assert.Equal(t, []int{2}, env.repo.createdCC)
		assert.Equal(t, []int{3}, env.repo.createdBCC)

		stored := env.repo.emails[100]
		assert.Equal(t, models.EmailStatusPending, stored.Status)
		assert.Equal(t, map[string]any{"company_name": "Acme"}, stored.CustomVariables)

		require.Len(t, env.attachments.created, 2)
		assert.Equal(t, int64(4), env.attachments.created[0].Size)
		assert.Equal(t, "application/pdf", env.attachments.created[0].ContentType)
		assert.Equal(t, "application/octet-stream", env.attachments.created[1].ContentType)
		assert.Empty(t, env.transport.messages)
	})

	t.Run("explicit custom variables are kept", func(t *testing.T) {
		env := newTestSentEmailEnv()
		svc := env.service()

		_, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID:     1,
			Subject:         "S",
			Body:            "B",
			CustomVariables: map[string]any{"room": "3B"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"room": "3B"}, env.repo.emails[100].CustomVariables)
	})

	t.Run("overlap blocks the save", func(t *testing.T) {
		env := newTestSentEmailEnv()
		svc := env.service()

		_, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID:    1,
			CCRecipientIDs: []int{1},
			Subject:        "S",
			Body:           "B",
		}, nil)

		assert.Equal(t, []string{"The main recipient cannot also be in the CC list."}, validationMessages(t, err))
		assert.Empty(t, env.repo.emails)
	})

	t.Run("oversized attachment blocks the save", func(t *testing.T) {
		env := newTestSentEmailEnv()
		svc := env.service()

		_, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID: 1,
			Subject:     "S",
			Body:        "B",
		}, []models.AttachmentUpload{{Filename: "big.pdf", Size: 6 * mib, Reader: bytes.NewReader(nil)}})

		assert.Equal(t, []string{"File 'big.pdf' exceeds 5MB limit (6.0MB)"}, validationMessages(t, err))
		assert.Empty(t, env.repo.emails)
		assert.Empty(t, env.storage.files)
	})

	t.Run("unknown recipients and template", func(t *testing.T) {
		env := newTestSentEmailEnv()
		svc := env.service()
		templateID := 99

		_, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID:    1,
			CCRecipientIDs: []int{42},
			TemplateID:     &templateID,
			Subject:        "S",
			Body:           "B",
		}, nil)
		assert.Equal(t, []string{"Recipient 42 does not exist."}, validationMessages(t, err))

		_, err = svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID: 1,
			TemplateID:  &templateID,
			Subject:     "S",
			Body:        "B",
		}, nil)
		assert.Equal(t, []string{"Template 99 does not exist."}, validationMessages(t, err))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newTestSentEmailEnv().service()

		_, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{}, nil)

		assert.Equal(t, []string{"Recipient is required.", "Subject is required.", "Body is required."}, validationMessages(t, err))
	})

	t.Run("storage failure removes the new email", func(t *testing.T) {
		env := newTestSentEmailEnv()
		env.storage.saveErr = errors.New("disk full")
		svc := env.service()

		_, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID: 1,
			Subject:     "S",
			Body:        "B",
		}, []models.AttachmentUpload{{Filename: "cv.pdf", Size: 1, Reader: bytes.NewReader([]byte("x"))}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Equal(t, []int{100}, env.repo.deleted)
		assert.Empty(t, env.repo.emails)
	})

	t.Run("attachment row failure removes stored files", func(t *testing.T) {
		env := newTestSentEmailEnv()
		env.attachments.createErr = errors.New("db down")
		svc := env.service()

		_, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID: 1,
			Subject:     "S",
			Body:        "B",
		}, []models.AttachmentUpload{{Filename: "cv.pdf", Size: 1, Reader: bytes.NewReader([]byte("x"))}})

		require.Error(t, err)
		assert.Len(t, env.storage.deleted, 1)
		assert.Empty(t, env.storage.files)
		assert.Equal(t, []int{100}, env.repo.deleted)
	})

	t.Run("save and send", func(t *testing.T) {
		env := newTestSentEmailEnv()
		svc := env.service()

		resp, err := svc.Create(context.Background(), &models.CreateSentEmailRequest{
			RecipientID: 1,
			Subject:     "Hello {{name}}",
			Body:        "plain text",
			Send:        true,
		}, nil)

		require.NoError(t, err)
		require.NotNil(t, resp.Send)
		assert.Equal(t, models.EmailStatusSuccess, resp.Send.Status)
		assert.Equal(t, []string{"Hello Ada"}, env.transport.subjects)
	})
}

func TestSentEmailService_Update(t *testing.T) {
	existing := func() *models.SentEmail {
		return &models.SentEmail{
			ID:          10,
			RecipientID: 1,
			Recipient:   &ada,
			CC:          []models.Recipient{grace},
			Subject:     "S",
			Body:        "B",
			Status:      models.EmailStatusFailed,
		}
	}

	t.Run("new bcc is checked against existing cc", func(t *testing.T) {
		env := newTestSentEmailEnv()
		env.repo = newMockSentEmailRepository(existing())
		svc := env.service()
		bcc := []int{2}

		_, err := svc.Update(context.Background(), 10, &models.UpdateSentEmailRequest{BCCRecipientIDs: &bcc})

		assert.Equal(t, []string{"The following recipients cannot be in both CC and BCC lists: Grace"}, validationMessages(t, err))
		assert.Nil(t, env.repo.lastUpdate)
	})

	t.Run("changing the main recipient into cc is rejected", func(t *testing.T) {
		env := newTestSentEmailEnv()
		env.repo = newMockSentEmailRepository(existing())
		svc := env.service()
		recipientID := 2

		_, err := svc.Update(context.Background(), 10, &models.UpdateSentEmailRequest{RecipientID: &recipientID})

		assert.Equal(t, []string{"The main recipient cannot also be in the CC list."}, validationMessages(t, err))
	})

	t.Run("success", func(t *testing.T) {
		env := newTestSentEmailEnv()
		env.repo = newMockSentEmailRepository(existing())
		svc := env.service()
		subject := "New subject"
		cc := []int{3, 3}

		resp, err := svc.Update(context.Background(), 10, &models.UpdateSentEmailRequest{Subject: &subject, CCRecipientIDs: &cc})

		require.NoError(t, err)
		assert.Equal(t, 10, resp.ID)
		require.NotNil(t, env.repo.lastUpdate)
		assert.Equal(t, []int{3}, *env.repo.lastUpdate.CCRecipientIDs)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestSentEmailEnv().service()

		_, err := svc.Update(context.Background(), 10, &models.UpdateSentEmailRequest{})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSentEmailService_GetByID_SizeDisplay(t *testing.T) {
	env := newTestSentEmailEnv()
	env.repo = newMockSentEmailRepository(&models.SentEmail{ID: 10, RecipientID: 1, Recipient: &ada})
	env.attachments.byEmail[10] = []models.SentEmailAttachment{
		{ID: 1, SentEmailID: 10, Size: 512},
		{ID: 2, SentEmailID: 10, Size: 2048},
		{ID: 3, SentEmailID: 10, Size: 3 * mib},
	}
	svc := env.service()

	email, err := svc.GetByID(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, email.Attachments, 3)
	assert.Equal(t, "512 B", email.Attachments[0].SizeDisplay)
	assert.Equal(t, "2.0 KB", email.Attachments[1].SizeDisplay)
	assert.Equal(t, "3.0 MB", email.Attachments[2].SizeDisplay)
}

func TestSentEmailService_GetAll_InvalidStatus(t *testing.T) {
	svc := newTestSentEmailEnv().service()

	_, err := svc.GetAll(context.Background(), models.SentEmailFilter{Status: "queued"})

	assert.Equal(t, []string{"Unknown status 'queued'."}, validationMessages(t, err))
}

func TestSentEmailService_Delete_RemovesFiles(t *testing.T) {
	env := newTestSentEmailEnv()
	env.repo = newMockSentEmailRepository(&models.SentEmail{ID: 10})
	env.storage.files["p/cv.pdf"] = []byte("x")
	env.attachments.byEmail[10] = []models.SentEmailAttachment{{ID: 1, SentEmailID: 10, FilePath: "p/cv.pdf"}}
	svc := env.service()

	require.NoError(t, svc.Delete(context.Background(), 10))
	assert.Equal(t, []string{"p/cv.pdf"}, env.storage.deleted)
	assert.Empty(t, env.repo.emails)
}

func TestSentEmailService_OpenAttachment(t *testing.T) {
	env := newTestSentEmailEnv()
	env.storage.files["p/cv.pdf"] = []byte("%PDF")
	env.attachments.byEmail[10] = []models.SentEmailAttachment{{ID: 1, SentEmailID: 10, FilePath: "p/cv.pdf", Filename: "cv.pdf"}}
	svc := env.service()

	attachment, rc, err := svc.OpenAttachment(context.Background(), 10, 1)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", attachment.Filename)
	assert.Equal(t, "%PDF", string(data))

	_, _, err = svc.OpenAttachment(context.Background(), 11, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSentEmailService_TemplatePrefill(t *testing.T) {
	svc := newTestSentEmailEnv().service()

	found, err := svc.TemplatePrefill(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, &models.TemplateFetchResponse{
		Success: true,
		Subject: "Interview for {{position}}",
		Body:    "<p>Hi {{name}}, your interview is {{interview_datetime}}.</p>",
	}, found)

	missing, err := svc.TemplatePrefill(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &models.TemplateFetchResponse{Success: false, Error: "Template not found"}, missing)
}

func TestSentEmailService_Draft(t *testing.T) {
	svc := newTestSentEmailEnv().service()
	templateID := 4
	unknown := 77

	tests := []struct {
		name            string
		templateID      *int
		expectedSubject string
		expectTemplate  bool
	}{
		{name: "no template"},
		{name: "known template", templateID: &templateID, expectedSubject: "Interview for {{position}}", expectTemplate: true},
		{name: "unknown template is ignored", templateID: &unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := svc.Draft(context.Background(), tt.templateID)

			require.NoError(t, err)
			assert.Equal(t, map[string]any{"company_name": "Acme"}, draft.CustomVariables)
			assert.Equal(t, tt.expectedSubject, draft.Subject)
			assert.Equal(t, tt.expectTemplate, draft.TemplateID != nil)
		})
	}
}
