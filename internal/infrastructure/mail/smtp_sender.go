package mail

import (
	"context"
	"fmt"
	"html"

	"github.com/jhoicas/ibeauty-api/internal/application/auth"
	"github.com/jhoicas/ibeauty-api/pkg/config"
	"gopkg.in/gomail.v2"
)

var _ auth.Mailer = (*SMTPSender)(nil)

// SMTPSender envía el correo de verificación por SMTP.
type SMTPSender struct {
	from   string
	dialer *gomail.Dialer
	send   func(m *gomail.Message) error
}

// NewSMTPSender construye el sender. Devuelve nil si no hay host configurado (envío deshabilitado).
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	if cfg.Host == "" {
		return nil
	}
	s := &SMTPSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
	s.send = func(m *gomail.Message) error { return s.dialer.DialAndSend(m) }
	return s
}

// SendVerification arma y envía el correo con el enlace de verificación.
func (s *SMTPSender) SendVerification(ctx context.Context, to, fullName, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := verificationMessage(s.from, to, fullName, link)
	if err := s.send(m); err != nil {
		return fmt.Errorf("send verification mail: %w", err)
	}
	return nil
}

func verificationMessage(from, to, fullName, link string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetAddressHeader("To", to, fullName)
	m.SetHeader("Subject", "Verify your email")
	m.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nConfirm your email address by opening:\n%s\n", fullName, link))
	m.AddAlternative("text/html", fmt.Sprintf(
		`<p>Hi %s,</p><p>Confirm your email address:</p><p><a href="%s">Verify email</a></p>`,
		html.EscapeString(fullName), html.EscapeString(link),
	))
	return m
}
