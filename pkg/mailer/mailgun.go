package mailer

import (
	"context"
	"errors"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

// ErrNotConfigured is returned when MAIL_SEND_ENABLED is on without Mailgun
// credentials.
var ErrNotConfigured = errors.New("mailgun domain, api key and sender are required")

// Mailgun delivers rendered notification emails. One client is shared by all
// deliveries of a worker.
type Mailgun struct {
	client *mg.MailgunImpl
	sender string
}

// NewMailgun builds the client. apiBase is optional and selects the region,
// e.g. https://api.eu.mailgun.net/v3.
func NewMailgun(domain, apiKey, sender, apiBase string) (*Mailgun, error) {
	if domain == "" || apiKey == "" || sender == "" {
		return nil, ErrNotConfigured
	}
	client := mg.NewMailgun(domain, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}
	return &Mailgun{client: client, sender: sender}, nil
}

// Deliver sends one job whose bodies were already rendered, tagged with its
// template name. It returns the Mailgun message id.
func (m *Mailgun) Deliver(ctx context.Context, job EmailJob, subject, text, html string) (string, error) {
	msg := m.client.NewMessage(m.sender, subject, text, job.To)
	if html != "" {
		msg.SetHtml(html)
	}
	if job.Template != "" {
		if err := msg.AddTag(job.Template); err != nil {
			return "", err
		}
	}
	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	_, id, err := m.client.Send(c, msg)
	return id, err
}
