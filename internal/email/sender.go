package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"taskhive_backend/internal/config"
)

// Sender delivers a single email. The SMTP implementation is used in
// production; tests substitute a recording fake.
type Sender interface {
	Send(to, subject, text, html string) error
}

// SMTPSender delivers mail through the configured SMTP relay.
type SMTPSender struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer:    gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
	}
}

func (s *SMTPSender) Send(to, subject, text, html string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	if html != "" {
		m.AddAlternative("text/html", html)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
