package store

import (
	"strings"
	"testing"

	"shopmill/internal/models"
)

// TestCarouselStore_CreateUsesPrefixedID verifies carousel IDs carry the
// type-distinguishing prefix.
func TestCarouselStore_CreateUsesPrefixedID(t *testing.T) {
	db := testDB(t)
	s := NewCarouselStore(db)

	created, err := s.Create(&models.CarouselItem{
		Title:    "Summer Sale",
		Category: "Outdoor",
		Content:  "Up to 40% off selected garden furniture.",
		ImageSrc: "https://example.com/summer.jpg",
		AIHint:   "garden furniture sale",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanCarousel(t, db, created.ID) })

	if !strings.HasPrefix(created.ID, models.CarouselIDPrefix) {
		t.Errorf("ID = %q, want %q prefix", created.ID, models.CarouselIDPrefix)
	}

	got, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil || got.Title != created.Title || got.AIHint != created.AIHint {
		t.Errorf("FindByID = %+v, want %+v", got, created)
	}
}

// TestCarouselStore_UpdateAndDelete covers update and delete, including the
// not-found contract.
func TestCarouselStore_UpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewCarouselStore(db)

	created, err := s.Create(&models.CarouselItem{
		Title:    "Launch Week",
		Content:  "New arrivals every day this week.",
		VideoSrc: "https://example.com/launch.mp4",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanCarousel(t, db, created.ID) })

	updated, err := s.Update(created.ID, &models.CarouselItem{
		Title:    "Launch Month",
		Category: "News",
		Content:  "New arrivals all month long.",
		ImageSrc: "/img/launch.png",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil || updated.Title != "Launch Month" || updated.VideoSrc != "" {
		t.Errorf("Update = %+v", updated)
	}

	missing, err := s.Update("carousel-missing", &models.CarouselItem{Title: "X", Content: "Y"})
	if err != nil {
		t.Fatalf("Update missing: %v", err)
	}
	if missing != nil {
		t.Errorf("Update missing = %+v, want nil", missing)
	}

	removed, err := s.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("Delete: reported no row removed")
	}
}
