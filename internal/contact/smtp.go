package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Relay delivers a message to the site owner.
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

// Configured reports whether credentials and a recipient are set.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != "" && c.User != "" && c.Password != "" && c.To != ""
}

// SMTPRelay sends messages through an SMTP server with PLAIN auth.
type SMTPRelay struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPRelay(cfg SMTPConfig) *SMTPRelay {
	return &SMTPRelay{cfg: cfg, sendMail: smtp.SendMail}
}

func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	if !r.cfg.Configured() {
		return ErrRelayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Password, r.cfg.Host)
	addr := r.cfg.Host + ":" + r.cfg.Port
	if err := r.sendMail(addr, auth, r.cfg.User, []string{r.cfg.To}, r.compose(msg)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func (r *SMTPRelay) compose(msg Message) []byte {
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form (%s)
`, msg.Name, msg.Email, msg.Subject, msg.Body, msg.ID)

	var b strings.Builder
	b.WriteString("To: " + r.cfg.To + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + msg.Subject + "\r\n")
	b.WriteString("From: " + r.cfg.User + "\r\n")
	b.WriteString("Reply-To: " + msg.Email + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
