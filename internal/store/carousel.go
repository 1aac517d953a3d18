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

// CarouselStore manages homepage carousel items in the database.
type CarouselStore struct {
	db *sql.DB
}

// NewCarouselStore returns a new CarouselStore.
func NewCarouselStore(db *sql.DB) *CarouselStore {
	return &CarouselStore{db: db}
}

const carouselColumns = `id, title, category, content, image_src, video_src, ai_hint`

// scanCarouselItem scans a row into a CarouselItem struct.
func scanCarouselItem(scanner interface{ Scan(...any) error }) (*models.CarouselItem, error) {
	var ci models.CarouselItem
	err := scanner.Scan(
		&ci.ID, &ci.Title, &ci.Category, &ci.Content,
		&ci.ImageSrc, &ci.VideoSrc, &ci.AIHint,
	)
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

// List returns all carousel items ordered by title.
func (s *CarouselStore) List() ([]models.CarouselItem, error) {
	rows, err := s.db.Query(`SELECT ` + carouselColumns + ` FROM carousel_items ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list carousel items: %w", err)
	}
	defer rows.Close()

	var items []models.CarouselItem
	for rows.Next() {
		ci, err := scanCarouselItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan carousel item: %w", err)
		}
		items = append(items, *ci)
	}
	return items, rows.Err()
}

// FindByID retrieves a carousel item by ID. Returns nil if not found.
func (s *CarouselStore) FindByID(id string) (*models.CarouselItem, error) {
	row := s.db.QueryRow(`SELECT `+carouselColumns+` FROM carousel_items WHERE id = $1`, id)
	ci, err := scanCarouselItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find carousel item by id: %w", err)
	}
	return ci, nil
}

// Create inserts a new carousel item. The generated ID carries the carousel
// prefix so it is distinguishable from other entity IDs.
func (s *CarouselStore) Create(ci *models.CarouselItem) (*models.CarouselItem, error) {
	ci.ID = models.CarouselIDPrefix + uuid.NewString()

	row := s.db.QueryRow(`
		INSERT INTO carousel_items (id, title, category, content, image_src, video_src, ai_hint)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+carouselColumns,
		ci.ID, ci.Title, ci.Category, ci.Content, ci.ImageSrc, ci.VideoSrc, ci.AIHint,
	)
	result, err := scanCarouselItem(row)
	if err != nil {
		return nil, fmt.Errorf("create carousel item: %w", err)
	}
	return result, nil
}

// Update modifies an existing carousel item. Returns nil if no item with
// the given ID exists.
func (s *CarouselStore) Update(id string, ci *models.CarouselItem) (*models.CarouselItem, error) {
	row := s.db.QueryRow(`
		UPDATE carousel_items SET
			title = $1, category = $2, content = $3, image_src = $4,
			video_src = $5, ai_hint = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+carouselColumns,
		ci.Title, ci.Category, ci.Content, ci.ImageSrc, ci.VideoSrc, ci.AIHint, id,
	)
	result, err := scanCarouselItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update carousel item: %w", err)
	}
	return result, nil
}

// Delete removes a carousel item. Returns whether a row was actually removed.
func (s *CarouselStore) Delete(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM carousel_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete carousel item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete carousel item rows: %w", err)
	}
	return n > 0, nil
}
