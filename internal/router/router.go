// Package router sets up all HTTP routes and middleware chains for the
// shop. It organizes routes into the public storefront API and the admin
// API with a shared middleware stack.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopmill/internal/handlers"
	"shopmill/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	// Public storefront API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/home", public.Home)
		r.Get("/categories", public.Categories)
		r.Get("/categories/{slug}", public.CategoryBySlug)
		r.Get("/products", public.Products)
		r.Get("/products/{id}", public.ProductByID)
		r.Get("/carousel", public.Carousel)
		r.Post("/contact", public.Contact)
	})

	// Admin API.
	r.Route("/admin/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", admin.ListCategories)
			r.Post("/", admin.CreateCategory)
			r.Get("/{id}", admin.GetCategory)
			r.Put("/{id}", admin.UpdateCategory)
			r.Delete("/{id}", admin.DeleteCategory)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", admin.ListProducts)
			r.Post("/", admin.CreateProduct)
			r.Get("/{id}", admin.GetProduct)
			r.Put("/{id}", admin.UpdateProduct)
			r.Delete("/{id}", admin.DeleteProduct)
		})

		r.Route("/carousel", func(r chi.Router) {
			r.Get("/", admin.ListCarouselItems)
			r.Post("/", admin.CreateCarouselItem)
			r.Get("/{id}", admin.GetCarouselItem)
			r.Put("/{id}", admin.UpdateCarouselItem)
			r.Delete("/{id}", admin.DeleteCarouselItem)
		})

		r.Post("/upload", admin.Upload)
		r.Post("/ai/suggest", admin.SuggestTags)

		r.Get("/messages", admin.ListContactMessages)
		r.Get("/mutations", admin.ListMutations)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
