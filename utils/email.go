package utils

import (
	"crypto/tls"
	"errors"
	"net/smtp"
	"os"
	"strings"

	"github.com/jordan-wright/email"
)

// SendOrderMail sends a plain-text notice about a new order.
func SendOrderMail(to []string, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	if host == "" || port == "" || user == "" || pass == "" || from == "" {
		return errors.New("smtp config missing")
	}
	if len(to) == 0 {
		return errors.New("no recipients")
	}

	e := email.NewEmail()
	e.From = from
	e.To = to
	e.Subject = subject
	e.Text = []byte(body)

	addr := host + ":" + port
	auth := smtp.PlainAuth("", user, pass, host)
	tlsConfig := &tls.Config{ServerName: host}
	useTLS := strings.EqualFold(os.Getenv("SMTP_TLS"), "true") ||
		os.Getenv("SMTP_TLS") == "1" ||
		port == "465"
	useStartTLS := strings.EqualFold(os.Getenv("SMTP_STARTTLS"), "true") ||
		os.Getenv("SMTP_STARTTLS") == "1"

	if useTLS {
		return e.SendWithTLS(addr, auth, tlsConfig)
	}
	if useStartTLS {
		return e.SendWithStartTLS(addr, auth, tlsConfig)
	}
	return e.Send(addr, auth)
}

// AdminRecipients returns the configured admin notice recipients.
func AdminRecipients() []string {
	raw := strings.TrimSpace(os.Getenv("MAIL_ADMIN"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
