// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the persistence adapter: the only component that talks
// to PostgreSQL. It generates entity IDs, derives category slugs, and maps
// stored rows to the external entity shape. Write failures propagate as
// errors; read failure tolerance is provided one layer up by the queries
// package.
package store

import (
	"encoding/json"
	"fmt"
)

// jsonbList encodes a string list for a JSONB column. A nil or empty list
// is stored as an empty JSON array, never as null.
func jsonbList(items []string) ([]byte, error) {
	if len(items) == 0 {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb list: %w", err)
	}
	return b, nil
}

// decodeList decodes a JSONB column value into a string list.
func decodeList(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = nil
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode jsonb list: %w", err)
	}
	return nil
}
