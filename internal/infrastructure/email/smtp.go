// Package email delivers notification mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/spacebook/spacebook/internal/shared/config"
)

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// SendNotificationEmail sends a multipart message with a plain text part
// and an HTML alternative.
func (s *SMTPEmailService) SendNotificationEmail(to, subject, htmlBody, plainBody string) error {
	m := s.buildMessage(to, subject, htmlBody, plainBody)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPEmailService) buildMessage(to, subject, htmlBody, plainBody string) *gomail.Message {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", "[Spacebook] "+subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", wrapHTML(subject, htmlBody))
	return m
}

func wrapHTML(title, body string) string {
	return fmt.Sprintf(`<html>
<body>
<h2>%s</h2>
%s
<p>This message was sent by the space reservation system.</p>
</body>
</html>`, title, body)
}
