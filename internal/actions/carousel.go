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

type carouselInput struct {
	Title    string `form:"title" validate:"required,min=3"`
	Category string `form:"category"`
	Content  string `form:"content" validate:"required,min=10"`
	ImageSrc string `form:"imageSrc" validate:"required_without=VideoSrc,omitempty,mediasrc"`
	VideoSrc string `form:"videoSrc" validate:"omitempty,mediasrc"`
	AIHint   string `form:"aiHint"`
}

func parseCarouselInput(form url.Values) carouselInput {
	return carouselInput{
		Title:    formValue(form, "title"),
		Category: formValue(form, "category"),
		Content:  formValue(form, "content"),
		ImageSrc: formValue(form, "imageSrc"),
		VideoSrc: formValue(form, "videoSrc"),
		AIHint:   formValue(form, "aiHint"),
	}
}

func carouselFromInput(in carouselInput) *models.CarouselItem {
	return &models.CarouselItem{
		Title:    in.Title,
		Category: in.Category,
		Content:  in.Content,
		ImageSrc: in.ImageSrc,
		VideoSrc: in.VideoSrc,
		AIHint:   in.AIHint,
	}
}

// CreateCarouselItem validates the form and creates a carousel slide. At
// least one of image and video source is required.
func (a *Actions) CreateCarouselItem(ctx context.Context, form url.Values) Result {
	in := parseCarouselInput(form)
	if fieldErrors := checkInput(in); fieldErrors != nil {
		return rejected(fieldErrors)
	}

	ci, err := a.carousel.Create(carouselFromInput(in))
	if err != nil {
		slog.Error("create carousel item failed", "title", in.Title, "error", err)
		return failed(genericError)
	}

	a.committed(ctx, "carousel_item", ci.ID, "create",
		cache.HomeKey(), cache.CarouselKey())
	return succeeded("Carousel item created successfully.")
}

// UpdateCarouselItem validates the form and updates the slide.
func (a *Actions) UpdateCarouselItem(ctx context.Context, id string, form url.Values) Result {
	in := parseCarouselInput(form)
	if fieldErrors := checkInput(in); fieldErrors != nil {
		return rejected(fieldErrors)
	}

	ci, err := a.carousel.Update(id, carouselFromInput(in))
	if err != nil {
		slog.Error("update carousel item failed", "id", id, "error", err)
		return failed(genericError)
	}
	if ci == nil {
		return failed("Carousel item not found.")
	}

	a.committed(ctx, "carousel_item", id, "update",
		cache.HomeKey(), cache.CarouselKey())
	return succeeded("Carousel item updated successfully.")
}

// DeleteCarouselItem removes the slide.
func (a *Actions) DeleteCarouselItem(ctx context.Context, id string) Result {
	removed, err := a.carousel.Delete(id)
	if err != nil {
		slog.Error("delete carousel item failed", "id", id, "error", err)
		return failed(genericError)
	}
	if !removed {
		return failed("Carousel item not found.")
	}

	a.committed(ctx, "carousel_item", id, "delete",
		cache.HomeKey(), cache.CarouselKey())
	return succeeded("Carousel item deleted successfully.")
}
