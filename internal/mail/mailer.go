package mail

import (
	"context"
	"fmt"

	"github.com/sitetive/forms-backend/internal/config"
	gomail "github.com/wneessen/go-mail"
)

// Sender delivers a single notification message. Implementations must not
// retry; the caller decides what a failed send means.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// SMTPSender sends plain-text mail through a configured SMTP relay.
type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, subject, body string) error {
	client, err := gomail.NewClient(s.cfg.SMTPHost,
		gomail.WithPort(s.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.SMTPUsername),
		gomail.WithPassword(s.cfg.SMTPPassword),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.MailFrom); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(s.cfg.MailTo); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
