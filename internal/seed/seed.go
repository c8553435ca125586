// Package seed fills an empty database with sample interview data
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// SentEmailCreator stores a sent email with its copy recipients
type SentEmailCreator interface {
	Create(ctx context.Context, email *models.SentEmail, ccIDs, bccIDs []int) error
}

// Counts holds the number of rows a run created per table
type Counts struct {
	Positions       int
	TemplateTypes   int
	CustomVariables int
	Recipients      int
	Templates       int
	SentEmails      int
}

// Seeder inserts the sample data. Rows are matched by their natural key, so
// running it again only adds what is missing.
type Seeder struct {
	db         *sql.DB
	sentEmails SentEmailCreator
	logger     *zap.Logger
	now        func() time.Time
}

// NewSeeder creates a new seeder
func NewSeeder(db *sql.DB, sentEmails SentEmailCreator, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, sentEmails: sentEmails, logger: logger, now: time.Now}
}

// Run seeds every table in dependency order
func (s *Seeder) Run(ctx context.Context) (*Counts, error) {
	counts := &Counts{}

	positionIDs := make(map[string]int, len(positions))
	for _, name := range positions {
		id, created, err := s.ensure(ctx,
			`SELECT id FROM positions WHERE name = ?`, []any{name},
			`INSERT INTO positions (name, description, is_active) VALUES (?, ?, TRUE)`, []any{name, "Description for " + name},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed position '%s': %w", name, err)
		}
		positionIDs[name] = id
		counts.Positions += boolToInt(created)
	}

	typeIDs := make(map[string]int, len(templateTypes))
	for _, name := range templateTypes {
		id, created, err := s.ensure(ctx,
			`SELECT id FROM template_types WHERE name = ?`, []any{name},
			`INSERT INTO template_types (name, is_active) VALUES (?, TRUE)`, []any{name},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed template type '%s': %w", name, err)
		}
		typeIDs[name] = id
		counts.TemplateTypes += boolToInt(created)
	}

	for _, v := range customVariables {
		_, created, err := s.ensure(ctx,
			`SELECT id FROM custom_variables WHERE name = ?`, []any{v.name},
			`INSERT INTO custom_variables (name, display_name, default_value, is_active) VALUES (?, ?, ?, TRUE)`,
			[]any{v.name, v.displayName, v.defaultValue},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed custom variable '%s': %w", v.name, err)
		}
		counts.CustomVariables += boolToInt(created)
	}

	recipientIDs := make([]int, 0, len(recipients))
	for _, r := range recipients {
		id, created, err := s.ensure(ctx,
			`SELECT id FROM recipients WHERE email = ?`, []any{r.email},
			`INSERT INTO recipients (name, email, position_id, notes, is_active) VALUES (?, ?, ?, ?, TRUE)`,
			[]any{r.name, r.email, positionIDs[r.position], fmt.Sprintf("Applied for %s position", r.position)},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed recipient '%s': %w", r.email, err)
		}
		recipientIDs = append(recipientIDs, id)
		counts.Recipients += boolToInt(created)
	}

	for _, t := range templates {
		_, created, err := s.ensure(ctx,
			`SELECT id FROM email_templates WHERE name = ?`, []any{t.name},
			`INSERT INTO email_templates (name, template_type_id, subject, body, is_active) VALUES (?, ?, ?, ?, TRUE)`,
			[]any{t.name, typeIDs[t.templateType], t.subject, t.body},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed email template '%s': %w", t.name, err)
		}
		counts.Templates += boolToInt(created)
	}

	created, err := s.seedSentEmails(ctx, recipientIDs)
	if err != nil {
		return nil, err
	}
	counts.SentEmails = created

	s.logger.Info("database seeded",
		zap.Int("positions", counts.Positions),
		zap.Int("template_types", counts.TemplateTypes),
		zap.Int("custom_variables", counts.CustomVariables),
		zap.Int("recipients", counts.Recipients),
		zap.Int("templates", counts.Templates),
		zap.Int("sent_emails", counts.SentEmails),
	)
	return counts, nil
}

// seedSentEmails adds one sample email per subject. The main recipient, the CC
// and the BCC picks rotate through the recipients so that no one appears twice.
func (s *Seeder) seedSentEmails(ctx context.Context, recipientIDs []int) (int, error) {
	n := len(recipientIDs)
	if n == 0 {
		return 0, nil
	}

	statuses := []models.EmailStatus{models.EmailStatusSuccess, models.EmailStatusPending, models.EmailStatusFailed}
	created := 0
	for i, subject := range sampleSubjects {
		recipientID := recipientIDs[(i*2)%n]

		var exists bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM sent_emails WHERE recipient_id = ? AND subject = ?)`,
			recipientID, subject,
		).Scan(&exists)
		if err != nil {
			return created, fmt.Errorf("failed to check sample sent email: %w", err)
		}
		if exists {
			continue
		}

		var cc, bcc []int
		if n > 1 {
			cc = append(cc, recipientIDs[(i*2+1)%n])
		}
		if n > 2 && i%2 == 0 {
			bcc = append(bcc, recipientIDs[(i*2+2)%n])
		}

		interview := s.now().Add(time.Duration(i+1) * 48 * time.Hour).Truncate(time.Hour)
		email := &models.SentEmail{
			RecipientID:       recipientID,
			Subject:           subject,
			Body:              "<p>Dear {{name}}, this is a sample email. Interview details would be included here.</p>",
			InterviewDatetime: &interview,
			CustomVariables: map[string]any{
				"company_name":       "Northwind Ltd.",
				"interview_location": "Conference Room A",
				"company_address":    "123 Business St, Tech City",
			},
			Status: statuses[i%len(statuses)],
		}
		if err := s.sentEmails.Create(ctx, email, cc, bcc); err != nil {
			return created, fmt.Errorf("failed to seed sent email '%s': %w", subject, err)
		}
		created++
	}
	return created, nil
}

// ensure returns the id of the row matched by selectQuery, inserting it first when missing
func (s *Seeder) ensure(ctx context.Context, selectQuery string, selectArgs []any, insertQuery string, insertArgs []any) (int, bool, error) {
	var id int
	err := s.db.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, err
	}

	result, err := s.db.ExecContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return 0, false, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, false, err
	}
	return int(lastID), true, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
