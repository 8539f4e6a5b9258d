package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// SMTPMailer delivers mail over plain SMTP with AUTH PLAIN. It satisfies
// ports.Mailer; the dispatcher owns concurrency, so Send is synchronous.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

func (m *SMTPMailer) Send(_ context.Context, job domain.MailJob) error {
	msg := buildMessage(m.from, job)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{job.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", job.To, err)
	}
	return nil
}

func buildMessage(from string, job domain.MailJob) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + job.To + "\r\n")
	b.WriteString("Subject: " + job.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(job.HTMLBody)
	return []byte(b.String())
}
