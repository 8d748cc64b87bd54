package mailer

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends plain-text notification emails.
type Mailer interface {
	Send(to, subject, text string) error
}

// SMTPMailer sends mail through an SMTP server (Gmail by default).
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer using the given SMTP account. The account
// address is also used as the From header.
func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

// Send delivers a single plain-text message. Each call dials a fresh SMTP
// connection; there is no retry.
func (m *SMTPMailer) Send(to, subject, text string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	return m.dialer.DialAndSend(msg)
}
