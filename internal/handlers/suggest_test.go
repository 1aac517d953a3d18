package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"shopmill/internal/ai"
)

type stubProvider struct {
	response string
}

func (s *stubProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.response, nil
}

func (s *stubProvider) Name() string { return "stub" }

func newStubSuggester(response string) *ai.Suggester {
	r := ai.NewRegistry("stub", nil)
	r.Register("stub", &stubProvider{response: response})
	return ai.NewSuggester(r)
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSuggestTags(t *testing.T) {
	admin := NewAdmin(nil, nil, nil, nil, nil,
		newStubSuggester(`{"tags": ["mower", "garden"], "categories": ["Garden Tools"]}`))

	rec := httptest.NewRecorder()
	admin.SuggestTags(rec, postForm("/admin/api/ai/suggest", url.Values{
		"name":        {"Lawn Mower"},
		"description": {"A reliable petrol mower."},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got ai.Suggestion
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got.Tags, []string{"mower", "garden"}) {
		t.Errorf("tags = %v", got.Tags)
	}
	if !reflect.DeepEqual(got.Categories, []string{"Garden Tools"}) {
		t.Errorf("categories = %v", got.Categories)
	}
}

func TestSuggestTagsRequiresInput(t *testing.T) {
	admin := NewAdmin(nil, nil, nil, nil, nil, newStubSuggester("{}"))

	rec := httptest.NewRecorder()
	admin.SuggestTags(rec, postForm("/admin/api/ai/suggest", url.Values{}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSuggestTagsUpstreamFailure(t *testing.T) {
	// The stub returns prose instead of JSON; the suggester's parse error
	// must surface as a gateway-style failure.
	admin := NewAdmin(nil, nil, nil, nil, nil,
		newStubSuggester("Here are some tags: mower, garden."))

	rec := httptest.NewRecorder()
	admin.SuggestTags(rec, postForm("/admin/api/ai/suggest", url.Values{
		"name": {"Lawn Mower"},
	}))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
