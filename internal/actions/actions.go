// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package actions is the mutation layer: the boundary between untrusted
// form input and the store. Every mutation validates its input, writes
// through the store, invalidates the affected cached pages, and reports a
// structured result. Persistence errors are logged with full detail but
// reach the caller only as a generic message.
package actions

import (
	"context"
	"log/slog"

	"shopmill/internal/cache"
	"shopmill/internal/mail"
	"shopmill/internal/store"
)

// genericError is shown to the caller when a write fails for reasons the
// end user cannot act on. The real error goes to the log.
const genericError = "Something went wrong. Please try again."

// Result is the uniform outcome of a mutation. Success discriminates;
// FieldErrors is set only for validation failures.
type Result struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Error       string              `json:"error,omitempty"`
	FieldErrors map[string][]string `json:"errors,omitempty"`
}

// succeeded builds a success result.
func succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

// failed builds a generic failure result.
func failed(message string) Result {
	return Result{Success: false, Error: message}
}

// rejected builds a validation failure result with per-field messages.
func rejected(fieldErrors map[string][]string) Result {
	return Result{
		Success:     false,
		Error:       "Validation failed. Please check the highlighted fields.",
		FieldErrors: fieldErrors,
	}
}

// Actions bundles all mutation entry points with their dependencies.
type Actions struct {
	categories *store.CategoryStore
	products   *store.ProductStore
	carousel   *store.CarouselStore
	contacts   *store.ContactStore
	mutations  *store.MutationLogStore
	pages      *cache.PageCache
	notifier   *mail.Notifier
}

// New creates the mutation layer. pages and notifier may be nil; cache
// invalidation and contact notifications are then skipped.
func New(
	categories *store.CategoryStore,
	products *store.ProductStore,
	carousel *store.CarouselStore,
	contacts *store.ContactStore,
	mutations *store.MutationLogStore,
	pages *cache.PageCache,
	notifier *mail.Notifier,
) *Actions {
	return &Actions{
		categories: categories,
		products:   products,
		carousel:   carousel,
		contacts:   contacts,
		mutations:  mutations,
		pages:      pages,
		notifier:   notifier,
	}
}

// committed records a successful mutation and invalidates every cached page
// whose content depends on the changed entity. Both are best-effort; the
// write has already succeeded.
func (a *Actions) committed(ctx context.Context, entityType, entityID, action string, keys ...string) {
	if a.mutations != nil {
		a.mutations.Log(entityType, entityID, action)
	}
	if a.pages != nil {
		a.pages.Invalidate(ctx, keys...)
	}
	slog.Info("mutation committed",
		"entity_type", entityType,
		"entity_id", entityID,
		"action", action,
	)
}
