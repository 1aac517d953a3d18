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

// ContactStore persists storefront contact-form submissions.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore returns a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts a contact message, generating its ID.
func (s *ContactStore) Create(m *models.ContactMessage) (*models.ContactMessage, error) {
	m.ID = uuid.NewString()

	row := s.db.QueryRow(`
		INSERT INTO contact_messages (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, message, created_at`,
		m.ID, m.Name, m.Email, m.Message,
	)
	var out models.ContactMessage
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Message, &out.CreatedAt); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return &out, nil
}

// Recent returns the most recent contact messages, newest first.
func (s *ContactStore) Recent(limit int) ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var items []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
