// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopmill/internal/actions"
	"shopmill/internal/ai"
	"shopmill/internal/queries"
	"shopmill/internal/storage"
	"shopmill/internal/store"
)

// Admin serves the back-office API: CRUD for categories, products, and
// carousel items, file uploads, AI suggestions, and operational listings.
type Admin struct {
	actions   *actions.Actions
	queries   *queries.Queries
	contacts  *store.ContactStore
	mutations *store.MutationLogStore
	storage   *storage.Client
	suggester *ai.Suggester
}

// NewAdmin creates the admin handler group. storage and suggester may be
// nil; the corresponding endpoints then report a configuration error.
func NewAdmin(
	a *actions.Actions,
	q *queries.Queries,
	contacts *store.ContactStore,
	mutations *store.MutationLogStore,
	storageClient *storage.Client,
	suggester *ai.Suggester,
) *Admin {
	return &Admin{
		actions:   a,
		queries:   q,
		contacts:  contacts,
		mutations: mutations,
		storage:   storageClient,
		suggester: suggester,
	}
}

// mutate parses the form body and hands it to the given action.
func mutate(w http.ResponseWriter, r *http.Request, run func() actions.Result) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed form submission."})
		return
	}
	writeResult(w, run())
}

// --- Categories ---

func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, emptyList(a.queries.Categories()))
}

func (a *Admin) GetCategory(w http.ResponseWriter, r *http.Request) {
	c := a.queries.CategoryByID(chi.URLParam(r, "id"))
	if c == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Category not found."})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func() actions.Result {
		return a.actions.CreateCategory(r.Context(), r.PostForm)
	})
}

func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func() actions.Result {
		return a.actions.UpdateCategory(r.Context(), chi.URLParam(r, "id"), r.PostForm)
	})
}

func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	writeResult(w, a.actions.DeleteCategory(r.Context(), chi.URLParam(r, "id")))
}

// --- Products ---

func (a *Admin) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, emptyList(a.queries.Products()))
}

func (a *Admin) GetProduct(w http.ResponseWriter, r *http.Request) {
	p := a.queries.ProductByID(chi.URLParam(r, "id"))
	if p == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Product not found."})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *Admin) CreateProduct(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func() actions.Result {
		return a.actions.CreateProduct(r.Context(), r.PostForm)
	})
}

func (a *Admin) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func() actions.Result {
		return a.actions.UpdateProduct(r.Context(), chi.URLParam(r, "id"), r.PostForm)
	})
}

func (a *Admin) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	writeResult(w, a.actions.DeleteProduct(r.Context(), chi.URLParam(r, "id")))
}

// --- Carousel ---

func (a *Admin) ListCarouselItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, emptyList(a.queries.CarouselItems()))
}

func (a *Admin) GetCarouselItem(w http.ResponseWriter, r *http.Request) {
	ci := a.queries.CarouselItemByID(chi.URLParam(r, "id"))
	if ci == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Carousel item not found."})
		return
	}
	writeJSON(w, http.StatusOK, ci)
}

func (a *Admin) CreateCarouselItem(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func() actions.Result {
		return a.actions.CreateCarouselItem(r.Context(), r.PostForm)
	})
}

func (a *Admin) UpdateCarouselItem(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func() actions.Result {
		return a.actions.UpdateCarouselItem(r.Context(), chi.URLParam(r, "id"), r.PostForm)
	})
}

func (a *Admin) DeleteCarouselItem(w http.ResponseWriter, r *http.Request) {
	writeResult(w, a.actions.DeleteCarouselItem(r.Context(), chi.URLParam(r, "id")))
}

// --- Operational listings ---

// ListContactMessages returns the most recent contact submissions.
func (a *Admin) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	items, err := a.contacts.Recent(100)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not load messages."})
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// ListMutations returns the recent mutation audit log.
func (a *Admin) ListMutations(w http.ResponseWriter, r *http.Request) {
	entries, err := a.mutations.RecentEntries(100)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not load mutation log."})
		return
	}
	writeJSON(w, http.StatusOK, emptyList(entries))
}
