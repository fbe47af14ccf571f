package email

import (
	"context"
	"fmt"

	"github.com/cashtracker/backend/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

// SMTP sends mails through an SMTP server.
type SMTP struct {
	from   string
	client *mail.Client
}

// NewSMTP returns a Sender for the server configured in c.
func NewSMTP(c config.SMTP) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(c.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}

	if c.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.User),
			mail.WithPassword(c.Password),
		)
	}

	client, err := mail.NewClient(c.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not set up SMTP client for %s: %w", c.Host, err)
	}

	return &SMTP{from: c.From, client: client}, nil
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	return s.client.DialAndSendWithContext(ctx, m)
}

// Log writes mails to the log instead of sending them.
type Log struct{}

func (Log) Send(_ context.Context, msg Message) error {
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg(msg.HTML)
	return nil
}
