// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mail sends contact-form notification emails over SMTP.
package mail

import (
	"fmt"
	"html"
	"strconv"

	"github.com/wneessen/go-mail"

	"shopmill/internal/models"
)

// Notifier sends notification emails to the shop inbox. A nil Notifier is
// valid and silently drops notifications, so the contact form works without
// SMTP configuration.
type Notifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewNotifier creates a Notifier. Returns nil if host, from, or to is
// empty, allowing the app to run without SMTP.
func NewNotifier(host, port, username, password, from, to string) *Notifier {
	if host == "" || from == "" || to == "" {
		return nil
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		p = 587
	}
	return &Notifier{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// NotifyContact emails the shop inbox about a new contact message.
func (n *Notifier) NotifyContact(m *models.ContactMessage) error {
	if n == nil {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject("New contact message from " + m.Name)
	msg.SetBodyString(mail.TypeTextHTML, contactBody(m))

	client, err := mail.NewClient(n.host,
		mail.WithPort(n.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(n.username),
		mail.WithPassword(n.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail send: %w", err)
	}
	return nil
}

// contactBody renders the notification email body.
func contactBody(m *models.ContactMessage) string {
	return fmt.Sprintf(`<h2>New contact message</h2>
<p><strong>From:</strong> %s &lt;%s&gt;</p>
<p><strong>Received:</strong> %s</p>
<blockquote>%s</blockquote>`,
		html.EscapeString(m.Name),
		html.EscapeString(m.Email),
		m.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		html.EscapeString(m.Message),
	)
}
