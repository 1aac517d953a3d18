// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CarouselIDPrefix distinguishes carousel item IDs from other entity IDs.
const CarouselIDPrefix = "carousel-"

// CarouselItem is a homepage hero slide. Category is the display name of a
// category, intentionally decoupled from Category.ID. At least one of
// ImageSrc and VideoSrc is set; when both are, consumers give the video
// visual precedence. AIHint provides search keywords for fallback images.
type CarouselItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	ImageSrc string `json:"imageSrc,omitempty"`
	VideoSrc string `json:"videoSrc,omitempty"`
	AIHint   string `json:"data-ai-hint,omitempty"`
}
