// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// mutation_log.go records committed entity mutations in the database for
// audit and debugging purposes. Each entry captures which entity changed,
// when, and how (create/update/delete).
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// MutationLogStore handles mutation audit log operations.
type MutationLogStore struct {
	db *sql.DB
}

// NewMutationLogStore creates a new MutationLogStore.
func NewMutationLogStore(db *sql.DB) *MutationLogStore {
	return &MutationLogStore{db: db}
}

// Log records a committed mutation. Logging is best-effort; failures are
// reported via slog and never propagated to the mutation result.
func (s *MutationLogStore) Log(entityType, entityID, action string) {
	_, err := s.db.Exec(`
		INSERT INTO mutation_log (entity_type, entity_id, action)
		VALUES ($1, $2, $3)
	`, entityType, entityID, action)
	if err != nil {
		slog.Warn("failed to log mutation",
			"entity_type", entityType,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
		return
	}
	slog.Debug("mutation logged",
		"entity_type", entityType,
		"entity_id", entityID,
		"action", action,
	)
}

// MutationLogEntry represents a single recorded mutation.
type MutationLogEntry struct {
	ID         int64
	EntityType string
	EntityID   string
	Action     string
	OccurredAt string
}

// RecentEntries returns the most recent mutations for debugging, limited
// to the specified count.
func (s *MutationLogStore) RecentEntries(limit int) ([]MutationLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, entity_type, entity_id, action, occurred_at
		FROM mutation_log
		ORDER BY occurred_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query mutation log: %w", err)
	}
	defer rows.Close()

	var entries []MutationLogEntry
	for rows.Next() {
		var e MutationLogEntry
		if err := rows.Scan(&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan mutation log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
