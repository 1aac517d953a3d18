package ai

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// mockProvider returns a canned response for testing without network calls.
type mockProvider struct {
	response string
	err      error
}

func (m *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return m.response, m.err
}

func (m *mockProvider) Name() string { return "mock" }

func newMockSuggester(response string, err error) *Suggester {
	r := NewRegistry("mock", nil)
	r.Register("mock", &mockProvider{response: response, err: err})
	return NewSuggester(r)
}

func TestSuggestParsesStrictJSON(t *testing.T) {
	s := newMockSuggester(`{"tags": ["mower", "petrol"], "categories": ["Garden Tools"]}`, nil)

	got, err := s.Suggest(context.Background(), "Lawn Mower", "A petrol mower.")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !reflect.DeepEqual(got.Tags, []string{"mower", "petrol"}) {
		t.Errorf("Tags = %v", got.Tags)
	}
	if !reflect.DeepEqual(got.Categories, []string{"Garden Tools"}) {
		t.Errorf("Categories = %v", got.Categories)
	}
}

func TestSuggestStripsCodeFence(t *testing.T) {
	s := newMockSuggester("```json\n{\"tags\": [\"mower\"], \"categories\": []}\n```", nil)

	got, err := s.Suggest(context.Background(), "Lawn Mower", "A petrol mower.")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !reflect.DeepEqual(got.Tags, []string{"mower"}) {
		t.Errorf("Tags = %v", got.Tags)
	}
}

func TestSuggestCleansEntries(t *testing.T) {
	s := newMockSuggester(`{"tags": [" mower ", "", "petrol"], "categories": [" "]}`, nil)

	got, err := s.Suggest(context.Background(), "Lawn Mower", "A petrol mower.")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !reflect.DeepEqual(got.Tags, []string{"mower", "petrol"}) {
		t.Errorf("Tags = %v", got.Tags)
	}
	if len(got.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", got.Categories)
	}
}

func TestSuggestSurfacesProviderError(t *testing.T) {
	s := newMockSuggester("", errors.New("upstream down"))

	if _, err := s.Suggest(context.Background(), "Lawn Mower", "A petrol mower."); err == nil {
		t.Fatal("expected error")
	}
}

func TestSuggestRejectsNonJSON(t *testing.T) {
	s := newMockSuggester("Sure! Here are some tags: mower, petrol.", nil)

	if _, err := s.Suggest(context.Background(), "Lawn Mower", "A petrol mower."); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRegistryActiveSwitching(t *testing.T) {
	r := NewRegistry("mock", nil)
	r.Register("mock", &mockProvider{response: "ok"})

	if err := r.SetActive("missing"); err == nil {
		t.Error("SetActive(missing) succeeded")
	}
	if err := r.SetActive("mock"); err != nil {
		t.Errorf("SetActive(mock): %v", err)
	}
	if got := r.ActiveName(); got != "mock" {
		t.Errorf("ActiveName = %q", got)
	}

	out, err := r.Generate(context.Background(), "sys", "user")
	if err != nil || out != "ok" {
		t.Errorf("Generate = %q, %v", out, err)
	}
}
