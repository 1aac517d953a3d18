// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP endpoints of the shop: the public
// storefront JSON API and the admin API for content management, uploads,
// and AI suggestions.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// errorResponse is the uniform error body for non-mutation endpoints.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
