// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// suggest.go prompts the active LLM for product tag and category
// suggestions and parses the strict-JSON reply.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const suggestSystemPrompt = `You are a merchandising assistant for an online shop.
Given a product name and description, suggest short search tags and fitting category names.
Respond with ONLY a JSON object of the form {"tags": ["..."], "categories": ["..."]}.
Do not include any other text, explanation, or markdown.`

// Suggestion is the parsed result of a tag/category suggestion request.
type Suggestion struct {
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// Suggester asks the active provider for product tags and categories.
type Suggester struct {
	registry *Registry
}

// NewSuggester creates a Suggester over the given registry.
func NewSuggester(registry *Registry) *Suggester {
	return &Suggester{registry: registry}
}

// Suggest returns tag and category suggestions for a product. Provider and
// parse errors surface to the caller; there are no retries.
func (s *Suggester) Suggest(ctx context.Context, name, description string) (*Suggestion, error) {
	userPrompt := fmt.Sprintf("Product name: %s\n\nProduct description: %s", name, description)

	raw, err := s.registry.Generate(ctx, suggestSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("suggest generate: %w", err)
	}

	var out Suggestion
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return nil, fmt.Errorf("suggest parse: %w", err)
	}

	out.Tags = cleanList(out.Tags)
	out.Categories = cleanList(out.Categories)
	return &out, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// add despite instructions not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// cleanList trims entries and drops empties.
func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
