// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package queries is the read layer used by storefront handlers. Every read
// degrades to an empty result when the store fails — the storefront must
// still render something meaningful while the database is unavailable — so
// callers never see a persistence error. Failures are logged for
// operational visibility.
package queries

import (
	"log/slog"

	"shopmill/internal/models"
	"shopmill/internal/store"
)

// Queries bundles failure-tolerant read access to all storefront entities.
type Queries struct {
	categories *store.CategoryStore
	products   *store.ProductStore
	carousel   *store.CarouselStore
}

// New creates the read layer over the given stores.
func New(categories *store.CategoryStore, products *store.ProductStore, carousel *store.CarouselStore) *Queries {
	return &Queries{
		categories: categories,
		products:   products,
		carousel:   carousel,
	}
}

// Categories returns all categories ordered by name, or an empty slice when
// the store is unavailable.
func (q *Queries) Categories() []models.Category {
	items, err := q.categories.List()
	if err != nil {
		slog.Error("read categories failed", "error", err)
		return nil
	}
	return items
}

// CategoryByID returns the category or nil when missing or unreadable.
func (q *Queries) CategoryByID(id string) *models.Category {
	c, err := q.categories.FindByID(id)
	if err != nil {
		slog.Error("read category failed", "id", id, "error", err)
		return nil
	}
	return c
}

// CategoryBySlug returns the category or nil when missing or unreadable.
func (q *Queries) CategoryBySlug(slug string) *models.Category {
	c, err := q.categories.FindBySlug(slug)
	if err != nil {
		slog.Error("read category by slug failed", "slug", slug, "error", err)
		return nil
	}
	return c
}

// Products returns all products ordered by name, or an empty slice when the
// store is unavailable.
func (q *Queries) Products() []models.Product {
	items, err := q.products.List()
	if err != nil {
		slog.Error("read products failed", "error", err)
		return nil
	}
	return items
}

// ProductByID returns the product or nil when missing or unreadable.
func (q *Queries) ProductByID(id string) *models.Product {
	p, err := q.products.FindByID(id)
	if err != nil {
		slog.Error("read product failed", "id", id, "error", err)
		return nil
	}
	return p
}

// ProductsByCategoryID returns the products referencing the category, or an
// empty slice when the store is unavailable.
func (q *Queries) ProductsByCategoryID(categoryID string) []models.Product {
	items, err := q.products.ListByCategoryID(categoryID)
	if err != nil {
		slog.Error("read products by category failed", "category_id", categoryID, "error", err)
		return nil
	}
	return items
}

// CarouselItems returns all carousel items ordered by title, or an empty
// slice when the store is unavailable.
func (q *Queries) CarouselItems() []models.CarouselItem {
	items, err := q.carousel.List()
	if err != nil {
		slog.Error("read carousel items failed", "error", err)
		return nil
	}
	return items
}

// CarouselItemByID returns the carousel item or nil when missing or
// unreadable.
func (q *Queries) CarouselItemByID(id string) *models.CarouselItem {
	ci, err := q.carousel.FindByID(id)
	if err != nil {
		slog.Error("read carousel item failed", "id", id, "error", err)
		return nil
	}
	return ci
}
