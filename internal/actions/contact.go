// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package actions

import (
	"context"
	"log/slog"
	"net/url"

	"shopmill/internal/models"
)

type contactInput struct {
	Name    string `form:"name" validate:"required,min=2"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required,min=10"`
}

// SubmitContact validates and persists a contact-form submission, then
// notifies the shop inbox. The notification is best-effort; the message is
// already stored when it is attempted.
func (a *Actions) SubmitContact(ctx context.Context, form url.Values) Result {
	in := contactInput{
		Name:    formValue(form, "name"),
		Email:   formValue(form, "email"),
		Message: formValue(form, "message"),
	}
	if fieldErrors := checkInput(in); fieldErrors != nil {
		return rejected(fieldErrors)
	}

	m, err := a.contacts.Create(&models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	})
	if err != nil {
		slog.Error("save contact message failed", "email", in.Email, "error", err)
		return failed(genericError)
	}

	if err := a.notifier.NotifyContact(m); err != nil {
		slog.Warn("contact notification failed", "id", m.ID, "error", err)
	}

	a.committed(ctx, "contact_message", m.ID, "create")
	return succeeded("Thanks for reaching out. We'll get back to you soon.")
}
