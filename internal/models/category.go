// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted entities of the shop: categories,
// products, carousel items, and contact messages. Entities carry opaque
// string IDs generated by the store layer; they hold no behaviour and are
// validated on the way in by the actions layer.
package models

// Category groups products for the storefront navigation.
// Slug is derived from Name and recomputed whenever Name changes.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
