package slug

import "testing"

// TestGenerate exercises the slug derivation with typical category names,
// special characters, whitespace variants, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal names ---
		{name: "simple two words", input: "Home Decor", want: "home-decor"},
		{name: "already lowercase", input: "already lowercase", want: "already-lowercase"},
		{name: "single word", input: "Electronics", want: "electronics"},
		{name: "mixed case sentence", input: "Outdoor And Garden Furniture", want: "outdoor-and-garden-furniture"},

		// --- Special characters ---
		{name: "ampersand stripped", input: "Home & Garden", want: "home-garden"},
		{name: "punctuation stripped", input: "Kids' Toys, Games!", want: "kids-toys-games"},
		{name: "parentheses stripped", input: "Audio (Wireless)", want: "audio-wireless"},
		{name: "underscore kept", input: "odd_name here", want: "odd_name-here"},
		{name: "plus and equals", input: "1 + 1 = 2", want: "1-1-2"},

		// --- Whitespace handling ---
		{name: "leading and trailing spaces", input: "  hello world  ", want: "hello-world"},
		{name: "consecutive spaces collapsed", input: "hello    world", want: "hello-world"},
		{name: "tab becomes hyphen", input: "hello\tworld", want: "hello-world"},
		{name: "newline becomes hyphen", input: "hello\nworld", want: "hello-world"},

		// --- Hyphen handling ---
		{name: "existing hyphen preserved", input: "well-known brands", want: "well-known-brands"},
		{name: "multiple hyphens collapsed", input: "hello---world", want: "hello-world"},
		{name: "surrounding hyphens trimmed", input: "--hello world--", want: "hello-world"},

		// --- Edge cases ---
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "     ", want: ""},
		{name: "only special characters", input: "!@#$%^&*()", want: ""},
		{name: "single character", input: "A", want: "a"},
		{name: "numbers kept", input: "Top 10 Picks 2026", want: "top-10-picks-2026"},
		{name: "version dots stripped", input: "Version 2.0", want: "version-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{"home-decor", "top-10-picks-2026", "a", "123"}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			if got := Generate(s); got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}

// TestGenerate_ConsistentCase verifies slugs are lowercase regardless of
// input casing.
func TestGenerate_ConsistentCase(t *testing.T) {
	inputs := []string{"HOME DECOR", "Home Decor", "hOmE dEcOr"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if got := Generate(input); got != "home-decor" {
				t.Errorf("Generate(%q) = %q, want %q", input, got, "home-decor")
			}
		})
	}
}
