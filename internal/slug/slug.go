// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe category identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var (
	// whitespaceRun matches one or more whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// nonWord matches anything that is not a word character or hyphen.
	nonWord = regexp.MustCompile(`[^\w-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate derives a slug from a category name: lowercased, whitespace
// replaced by hyphens, remaining non-word characters stripped.
// Example: "Home & Garden!" → "home-garden"
func Generate(name string) string {
	result := strings.ToLower(strings.TrimSpace(name))
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = nonWord.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
