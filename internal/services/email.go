package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/worklens/worklens/internal/config"
	"github.com/worklens/worklens/pkg/logger"
)

// EmailService delivers invitation emails over SMTP. It is an outbound
// collaborator with a narrow surface; delivery failures never fail the
// operation that triggered them.
type EmailService struct {
	cfg config.EmailConfig
}

func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendInvitation mails the activation link for a freshly created employee.
func (s *EmailService) SendInvitation(toEmail, token string) error {
	if !s.cfg.Enabled || s.cfg.Host == "" {
		logger.Debug().Str("email", toEmail).Msg("email disabled, skipping invitation")
		return nil
	}

	activationURL := fmt.Sprintf("%s?token=%s", s.cfg.ActivationURL, token)
	subject := "You're invited to join Worklens"
	body := fmt.Sprintf(`<html><body>
<h2>Welcome!</h2>
<p>You have been invited to join the Worklens time tracker.</p>
<p>Activate your account and set your password here:</p>
<p><a href="%s">%s</a></p>
</body></html>`, activationURL, activationURL)

	return s.send(toEmail, subject, body)
}

func (s *EmailService) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var msg strings.Builder
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if !s.cfg.UseTLS {
		return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
	}

	// STARTTLS path: plain dial, upgrade, then auth.
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return err
		}
	}
	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg.String())); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
