// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Product is a storefront catalogue item. CategoryIDs reference Category.ID
// values; the references are pruned when a category is deleted but are not
// otherwise validated against existence, so a product may carry zero live
// references after a deletion.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	CategoryIDs []string `json:"categoryIds"`
	Tags        []string `json:"tags"`
}
