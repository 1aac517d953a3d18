// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopmill/internal/actions"
	"shopmill/internal/cache"
	"shopmill/internal/queries"
)

// Public serves the storefront JSON API. Reads go through the
// failure-tolerant query layer and are cached per page; the contact form is
// the only public mutation.
type Public struct {
	queries *queries.Queries
	actions *actions.Actions
	pages   *cache.PageCache
}

// NewPublic creates the public handler group. pages may be nil to disable
// payload caching.
func NewPublic(q *queries.Queries, a *actions.Actions, pages *cache.PageCache) *Public {
	return &Public{queries: q, actions: a, pages: pages}
}

// serveCached serves a cached payload when present, otherwise builds it,
// caches it, and serves it. build returns false to signal not-found, which
// is never cached.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string, build func() (any, bool)) {
	if p.pages != nil {
		if payload, ok := p.pages.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write(payload)
			return
		}
	}

	data, ok := build()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found."})
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("marshal page payload failed", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Something went wrong."})
		return
	}

	if p.pages != nil {
		p.pages.Set(r.Context(), key, payload)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(payload)
}

// emptyList keeps JSON output as [] instead of null for empty results.
func emptyList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Home serves the homepage payload: carousel slides, the product grid, and
// the category navigation in one response.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.HomeKey(), func() (any, bool) {
		return map[string]any{
			"carousel":   emptyList(p.queries.CarouselItems()),
			"products":   emptyList(p.queries.Products()),
			"categories": emptyList(p.queries.Categories()),
		}, true
	})
}

// Categories serves the category list.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.CategoriesKey(), func() (any, bool) {
		return emptyList(p.queries.Categories()), true
	})
}

// CategoryBySlug serves one category page: the category plus its products.
func (p *Public) CategoryBySlug(w http.ResponseWriter, r *http.Request) {
	categorySlug := chi.URLParam(r, "slug")
	p.serveCached(w, r, cache.CategoryKey(categorySlug), func() (any, bool) {
		c := p.queries.CategoryBySlug(categorySlug)
		if c == nil {
			return nil, false
		}
		return map[string]any{
			"category": c,
			"products": emptyList(p.queries.ProductsByCategoryID(c.ID)),
		}, true
	})
}

// Products serves the full product list.
func (p *Public) Products(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.ProductsKey(), func() (any, bool) {
		return emptyList(p.queries.Products()), true
	})
}

// ProductByID serves one product detail payload.
func (p *Public) ProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p.serveCached(w, r, cache.ProductKey(id), func() (any, bool) {
		prod := p.queries.ProductByID(id)
		if prod == nil {
			return nil, false
		}
		return prod, true
	})
}

// Carousel serves the carousel slides.
func (p *Public) Carousel(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.CarouselKey(), func() (any, bool) {
		return emptyList(p.queries.CarouselItems()), true
	})
}

// Contact accepts a contact-form submission.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed form submission."})
		return
	}
	writeResult(w, p.actions.SubmitContact(r.Context(), r.PostForm))
}

// writeResult maps a mutation result to an HTTP response: validation
// failures are 400, everything else 200 with the success flag
// discriminating.
func writeResult(w http.ResponseWriter, res actions.Result) {
	status := http.StatusOK
	if !res.Success && res.FieldErrors != nil {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res)
}
