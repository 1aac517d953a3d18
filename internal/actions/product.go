// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package actions

import (
	"context"
	"log/slog"
	"net/url"

	"shopmill/internal/cache"
	"shopmill/internal/models"
)

type productInput struct {
	Name        string   `form:"name" validate:"required,min=3"`
	Description string   `form:"description" validate:"required,min=10"`
	Price       float64  `form:"price" validate:"required,gt=0"`
	ImageURL    string   `form:"imageUrl" validate:"required,imageurl"`
	CategoryIDs []string `form:"categoryIds" validate:"required,min=1"`
	Tags        []string `form:"tags"`
}

func parseProductInput(form url.Values) productInput {
	return productInput{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
		Price:       parsePrice(formValue(form, "price")),
		ImageURL:    formValue(form, "imageUrl"),
		CategoryIDs: formList(form, "categoryIds"),
		Tags:        splitTags(form.Get("tags")),
	}
}

// categoryPageKeys maps category ids to their category-page cache keys.
// Lookups are best-effort; an unresolvable id only costs invalidation of a
// page that could not have been cached with current data anyway.
func (a *Actions) categoryPageKeys(ids []string) []string {
	var keys []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		c, err := a.categories.FindByID(id)
		if err != nil || c == nil {
			continue
		}
		keys = append(keys, cache.CategoryKey(c.Slug))
	}
	return keys
}

// CreateProduct validates the form and creates a product. Tags arrive as a
// comma-separated string and are normalized during parsing.
func (a *Actions) CreateProduct(ctx context.Context, form url.Values) Result {
	in := parseProductInput(form)
	if fieldErrors := checkInput(in); fieldErrors != nil {
		return rejected(fieldErrors)
	}

	p, err := a.products.Create(&models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryIDs: in.CategoryIDs,
		Tags:        in.Tags,
	})
	if err != nil {
		slog.Error("create product failed", "name", in.Name, "error", err)
		return failed(genericError)
	}

	keys := []string{cache.HomeKey(), cache.ProductsKey(), cache.ProductKey(p.ID)}
	keys = append(keys, a.categoryPageKeys(p.CategoryIDs)...)
	a.committed(ctx, "product", p.ID, "create", keys...)
	return succeeded("Product created successfully.")
}

// UpdateProduct validates the form and updates the product. Category pages
// for both the previous and the new references are invalidated.
func (a *Actions) UpdateProduct(ctx context.Context, id string, form url.Values) Result {
	in := parseProductInput(form)
	if fieldErrors := checkInput(in); fieldErrors != nil {
		return rejected(fieldErrors)
	}

	prev, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("update product failed", "id", id, "error", err)
		return failed(genericError)
	}
	if prev == nil {
		return failed("Product not found.")
	}

	p, err := a.products.Update(id, &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryIDs: in.CategoryIDs,
		Tags:        in.Tags,
	})
	if err != nil {
		slog.Error("update product failed", "id", id, "error", err)
		return failed(genericError)
	}
	if p == nil {
		return failed("Product not found.")
	}

	keys := []string{cache.HomeKey(), cache.ProductsKey(), cache.ProductKey(id)}
	keys = append(keys, a.categoryPageKeys(append(prev.CategoryIDs, p.CategoryIDs...))...)
	a.committed(ctx, "product", id, "update", keys...)
	return succeeded("Product updated successfully.")
}

// DeleteProduct removes the product. No other entity is affected.
func (a *Actions) DeleteProduct(ctx context.Context, id string) Result {
	prev, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("delete product failed", "id", id, "error", err)
		return failed(genericError)
	}
	if prev == nil {
		return failed("Product not found.")
	}

	removed, err := a.products.Delete(id)
	if err != nil {
		slog.Error("delete product failed", "id", id, "error", err)
		return failed(genericError)
	}
	if !removed {
		return failed("Product not found.")
	}

	keys := []string{cache.HomeKey(), cache.ProductsKey(), cache.ProductKey(id)}
	keys = append(keys, a.categoryPageKeys(prev.CategoryIDs)...)
	a.committed(ctx, "product", id, "delete", keys...)
	return succeeded("Product deleted successfully.")
}
