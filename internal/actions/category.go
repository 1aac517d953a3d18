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

type categoryInput struct {
	Name        string `form:"name" validate:"required,min=2"`
	Description string `form:"description"`
}

func parseCategoryInput(form url.Values) categoryInput {
	return categoryInput{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
	}
}

// CreateCategory validates the form and creates a category. The slug is
// derived from the name by the store.
func (a *Actions) CreateCategory(ctx context.Context, form url.Values) Result {
	in := parseCategoryInput(form)
	if fieldErrors := checkInput(in); fieldErrors != nil {
		return rejected(fieldErrors)
	}

	c, err := a.categories.Create(&models.Category{
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		slog.Error("create category failed", "name", in.Name, "error", err)
		return failed(genericError)
	}

	a.committed(ctx, "category", c.ID, "create",
		cache.HomeKey(), cache.CategoriesKey(), cache.CategoryKey(c.Slug))
	return succeeded("Category created successfully.")
}

// UpdateCategory validates the form and updates the category. A name change
// recomputes the slug, so both the old and new category pages are
// invalidated.
func (a *Actions) UpdateCategory(ctx context.Context, id string, form url.Values) Result {
	in := parseCategoryInput(form)
	if fieldErrors := checkInput(in); fieldErrors != nil {
		return rejected(fieldErrors)
	}

	prev, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("update category failed", "id", id, "error", err)
		return failed(genericError)
	}
	if prev == nil {
		return failed("Category not found.")
	}

	c, err := a.categories.Update(id, &models.Category{
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		slog.Error("update category failed", "id", id, "error", err)
		return failed(genericError)
	}
	if c == nil {
		return failed("Category not found.")
	}

	keys := []string{cache.HomeKey(), cache.CategoriesKey(), cache.CategoryKey(c.Slug)}
	if prev.Slug != c.Slug {
		keys = append(keys, cache.CategoryKey(prev.Slug))
	}
	a.committed(ctx, "category", c.ID, "update", keys...)
	return succeeded("Category updated successfully.")
}

// DeleteCategory removes the category and, through the store, prunes its id
// from every product. Product pages that referenced the category are
// invalidated along with the category pages.
func (a *Actions) DeleteCategory(ctx context.Context, id string) Result {
	prev, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("delete category failed", "id", id, "error", err)
		return failed(genericError)
	}
	if prev == nil {
		return failed("Category not found.")
	}

	// Collected before the delete, while the references still exist.
	affected, err := a.products.ListByCategoryID(id)
	if err != nil {
		slog.Warn("listing products for category delete failed", "id", id, "error", err)
	}

	removed, err := a.categories.Delete(id)
	if err != nil {
		slog.Error("delete category failed", "id", id, "error", err)
		return failed(genericError)
	}
	if !removed {
		return failed("Category not found.")
	}

	keys := []string{
		cache.HomeKey(),
		cache.CategoriesKey(),
		cache.CategoryKey(prev.Slug),
		cache.ProductsKey(),
	}
	for _, p := range affected {
		keys = append(keys, cache.ProductKey(p.ID))
	}
	a.committed(ctx, "category", id, "delete", keys...)
	return succeeded("Category deleted successfully.")
}
