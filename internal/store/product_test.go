package store

import (
	"reflect"
	"testing"

	"shopmill/internal/models"
)

// TestProductStore_RoundTrip verifies a created product reads back equal to
// the input plus the assigned id.
func TestProductStore_RoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewProductStore(db)

	in := &models.Product{
		Name:        "Walnut Desk Organizer",
		Description: "Five compartments of solid walnut.",
		Price:       39.5,
		ImageURL:    "https://example.com/organizer.jpg",
		CategoryIDs: []string{"cat-a", "cat-b"},
		Tags:        []string{"desk", "wood", "office"},
	}
	created, err := s.Create(in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanProducts(t, db, created.ID) })

	got, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil {
		t.Fatal("FindByID: not found")
	}
	if got.Name != in.Name || got.Description != in.Description ||
		got.Price != in.Price || got.ImageURL != in.ImageURL {
		t.Errorf("round-trip mismatch: got %+v", got)
	}
	if !reflect.DeepEqual(got.CategoryIDs, in.CategoryIDs) {
		t.Errorf("CategoryIDs = %v, want %v", got.CategoryIDs, in.CategoryIDs)
	}
	if !reflect.DeepEqual(got.Tags, in.Tags) {
		t.Errorf("Tags = %v, want %v", got.Tags, in.Tags)
	}
}

// TestProductStore_ListByCategoryID verifies JSONB containment filtering.
func TestProductStore_ListByCategoryID(t *testing.T) {
	db := testDB(t)
	s := NewProductStore(db)

	inCat, err := s.Create(&models.Product{
		Name: "In Category", Description: "matches the filter",
		Price: 5, ImageURL: "https://example.com/a.png",
		CategoryIDs: []string{"filter-cat", "other-cat"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	outCat, err := s.Create(&models.Product{
		Name: "Out of Category", Description: "does not match",
		Price: 5, ImageURL: "https://example.com/b.png",
		CategoryIDs: []string{"other-cat"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanProducts(t, db, inCat.ID, outCat.ID) })

	got, err := s.ListByCategoryID("filter-cat")
	if err != nil {
		t.Fatalf("ListByCategoryID: %v", err)
	}
	for _, p := range got {
		if p.ID == outCat.ID {
			t.Error("ListByCategoryID returned a product outside the category")
		}
	}
	found := false
	for _, p := range got {
		if p.ID == inCat.ID {
			found = true
		}
	}
	if !found {
		t.Error("ListByCategoryID did not return the matching product")
	}
}

// TestProductStore_UpdateAndDelete covers the remaining write paths.
func TestProductStore_UpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewProductStore(db)

	created, err := s.Create(&models.Product{
		Name: "Before", Description: "about to change",
		Price: 1, ImageURL: "https://example.com/x.png",
		CategoryIDs: []string{"c1"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanProducts(t, db, created.ID) })

	updated, err := s.Update(created.ID, &models.Product{
		Name: "After", Description: "changed description",
		Price: 2.5, ImageURL: "https://example.com/y.png",
		CategoryIDs: []string{"c1", "c2"},
		Tags:        []string{"sale"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil || updated.Name != "After" || updated.Price != 2.5 {
		t.Errorf("Update = %+v", updated)
	}

	missing, err := s.Update("no-such-id", &models.Product{
		Name: "X", Description: "Y", Price: 1, ImageURL: "https://e.com/z.png",
	})
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

	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("FindByID after delete = %+v, want nil", gone)
	}
}

// TestProductStore_EmptyListsStoredAsArrays verifies empty tag lists come
// back as empty, not as an error or null-decoding failure.
func TestProductStore_EmptyListsStoredAsArrays(t *testing.T) {
	db := testDB(t)
	s := NewProductStore(db)

	created, err := s.Create(&models.Product{
		Name: "Tagless", Description: "no tags at all",
		Price: 3, ImageURL: "https://example.com/t.png",
		CategoryIDs: []string{"c1"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanProducts(t, db, created.ID) })

	got, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", got.Tags)
	}
}
