package mailer

import (
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

// Attachment is an opened file to be attached to an outgoing message
type Attachment struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Envelope is a rendered email ready to be composed
type Envelope struct {
	From        string
	To          string
	CC          []string
	BCC         []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Compose builds the MIME message of env. A body containing HTML tags is sent
// as a tag-stripped text part with an HTML alternative; otherwise as plain text.
// Bcc addresses take part in the SMTP envelope but are not written to the headers.
func Compose(env *Envelope) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", env.From)
	m.SetHeader("To", env.To)
	if len(env.CC) > 0 {
		m.SetHeader("Cc", env.CC...)
	}
	if len(env.BCC) > 0 {
		m.SetHeader("Bcc", env.BCC...)
	}
	m.SetHeader("Subject", env.Subject)

	if HasHTML(env.Body) {
		m.SetBody("text/plain", StripTags(env.Body))
		m.AddAlternative("text/html", env.Body)
	} else {
		m.SetBody("text/plain", env.Body)
	}

	for _, a := range env.Attachments {
		attachFile(m, a)
	}

	return m
}

func attachFile(m *mail.Message, a Attachment) {
	settings := []mail.FileSetting{
		mail.SetCopyFunc(func(w io.Writer) error {
			if _, err := io.Copy(w, a.Content); err != nil {
				return fmt.Errorf("failed to read attachment %q: %w", a.Filename, err)
			}
			return nil
		}),
	}
	if a.ContentType != "" {
		settings = append(settings, mail.SetHeader(map[string][]string{
			"Content-Type": {a.ContentType + `; name="` + a.Filename + `"`},
		}))
	}
	m.Attach(a.Filename, settings...)
}
