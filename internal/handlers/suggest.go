// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
)

// SuggestTags asks the active AI provider for tag and category suggestions
// based on a product name and description.
func (a *Admin) SuggestTags(w http.ResponseWriter, r *http.Request) {
	if a.suggester == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "AI suggestions are not configured on the server.",
		})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	if name == "" && description == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Provide a product name or description.",
		})
		return
	}

	suggestion, err := a.suggester.Suggest(r.Context(), name, description)
	if err != nil {
		slog.Error("ai suggestion failed", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "AI suggestion failed. Check your provider configuration.",
		})
		return
	}

	writeJSON(w, http.StatusOK, suggestion)
}
