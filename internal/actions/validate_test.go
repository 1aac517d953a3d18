package actions

import (
	"net/url"
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a, b ,,c", []string{"a", "b", "c"}},
		{"garden", []string{"garden"}},
		{"  spaced  ,  out  ", []string{"spaced", "out"}},
		{",,,", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := splitTags(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormListNormalizesScalarAndList(t *testing.T) {
	scalar := url.Values{"categoryIds": {"cat-1"}}
	if got := formList(scalar, "categoryIds"); !reflect.DeepEqual(got, []string{"cat-1"}) {
		t.Errorf("scalar = %v, want [cat-1]", got)
	}

	multi := url.Values{"categoryIds": {"cat-1", "cat-2", " ", "cat-3"}}
	want := []string{"cat-1", "cat-2", "cat-3"}
	if got := formList(multi, "categoryIds"); !reflect.DeepEqual(got, want) {
		t.Errorf("multi = %v, want %v", got, want)
	}

	if got := formList(url.Values{}, "categoryIds"); len(got) != 0 {
		t.Errorf("absent = %v, want empty", got)
	}
}

func TestParsePrice(t *testing.T) {
	if got := parsePrice("19.99"); got != 19.99 {
		t.Errorf("parsePrice(19.99) = %v", got)
	}
	if got := parsePrice("not-a-number"); got != 0 {
		t.Errorf("parsePrice(not-a-number) = %v, want 0", got)
	}
	if got := parsePrice(""); got != 0 {
		t.Errorf("parsePrice(empty) = %v, want 0", got)
	}
}

func TestValidImageURL(t *testing.T) {
	valid := []string{
		"https://cdn.example.com/img/mower.jpg",
		"http://example.com/a.png",
		"https://placehold.co/600x400",
	}
	for _, in := range valid {
		errs := checkInput(productInput{
			Name:        "Lawn Mower",
			Description: "A reliable petrol lawn mower.",
			Price:       249.99,
			ImageURL:    in,
			CategoryIDs: []string{"cat-1"},
		})
		if errs != nil {
			t.Errorf("imageUrl %q rejected: %v", in, errs)
		}
	}

	invalid := []string{"not a url", "/relative/path.jpg", "ftp://example.com/a.jpg"}
	for _, in := range invalid {
		errs := checkInput(productInput{
			Name:        "Lawn Mower",
			Description: "A reliable petrol lawn mower.",
			Price:       249.99,
			ImageURL:    in,
			CategoryIDs: []string{"cat-1"},
		})
		if errs == nil || len(errs["imageUrl"]) == 0 {
			t.Errorf("imageUrl %q accepted, want rejection", in)
		}
	}
}

func TestCarouselMediaValidation(t *testing.T) {
	base := carouselInput{
		Title:   "Spring Sale",
		Content: "Save big on garden equipment this spring.",
	}

	// Neither source set.
	if errs := checkInput(base); errs == nil || len(errs["imageSrc"]) == 0 {
		t.Errorf("no media source accepted, want imageSrc error, got %v", errs)
	}

	// Site-relative image path.
	withImage := base
	withImage.ImageSrc = "/uploads/spring.jpg"
	if errs := checkInput(withImage); errs != nil {
		t.Errorf("relative imageSrc rejected: %v", errs)
	}

	// Absolute video URL, no image.
	withVideo := base
	withVideo.VideoSrc = "https://cdn.example.com/spring.mp4"
	if errs := checkInput(withVideo); errs != nil {
		t.Errorf("video-only rejected: %v", errs)
	}

	// Malformed video source.
	badVideo := withImage
	badVideo.VideoSrc = "not a source"
	if errs := checkInput(badVideo); errs == nil || len(errs["videoSrc"]) == 0 {
		t.Errorf("malformed videoSrc accepted, got %v", errs)
	}
}
