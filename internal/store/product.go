// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"shopmill/internal/models"
)

// ProductStore manages products in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, description, price, image_url, category_ids, tags`

// scanProduct scans a row into a Product struct, decoding the JSONB lists.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var categoryIDs, tags []byte
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&categoryIDs, &tags,
	)
	if err != nil {
		return nil, err
	}
	if err := decodeList(categoryIDs, &p.CategoryIDs); err != nil {
		return nil, err
	}
	if err := decodeList(tags, &p.Tags); err != nil {
		return nil, err
	}
	return &p, nil
}

// collectProducts drains a result set into a product slice.
func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// List returns all products ordered by name.
func (s *ProductStore) List() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// ListByCategoryID returns all products whose category_ids list contains
// the given category ID, ordered by name.
func (s *ProductStore) ListByCategoryID(categoryID string) ([]models.Product, error) {
	rows, err := s.db.Query(
		`SELECT `+productColumns+` FROM products WHERE category_ids ? $1 ORDER BY name`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return collectProducts(rows)
}

// FindByID retrieves a product by ID. Returns nil if not found.
func (s *ProductStore) FindByID(id string) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create inserts a new product, generating its ID. Returns the fully
// populated product.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	p.ID = uuid.NewString()

	categoryIDs, err := jsonbList(p.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := jsonbList(p.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO products (id, name, description, price, image_url, category_ids, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL, categoryIDs, tags,
	)
	result, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update modifies an existing product. Returns nil if no product with the
// given ID exists.
func (s *ProductStore) Update(id string, p *models.Product) (*models.Product, error) {
	categoryIDs, err := jsonbList(p.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := jsonbList(p.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		UPDATE products SET
			name = $1, description = $2, price = $3, image_url = $4,
			category_ids = $5, tags = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.ImageURL, categoryIDs, tags, id,
	)
	result, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return result, nil
}

// Delete removes a product. Returns whether a row was actually removed.
// Products have no dependents, so no cleanup follows.
func (s *ProductStore) Delete(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product rows: %w", err)
	}
	return n > 0, nil
}
