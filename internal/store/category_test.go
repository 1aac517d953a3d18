package store

import (
	"strings"
	"testing"

	"shopmill/internal/models"
)

// TestCategoryStore_CreateDerivesSlug verifies slug derivation on create and
// that a created category reads back identically by id and slug.
func TestCategoryStore_CreateDerivesSlug(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	created, err := s.Create(&models.Category{
		Name:        "Garden & Outdoor Living",
		Description: "Everything for the backyard",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanCategories(t, db, created.ID) })

	if created.ID == "" {
		t.Fatal("Create: empty ID")
	}
	if created.Slug != "garden-outdoor-living" {
		t.Errorf("Slug = %q, want garden-outdoor-living", created.Slug)
	}

	byID, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID == nil || byID.Name != created.Name || byID.Slug != created.Slug {
		t.Errorf("FindByID = %+v, want %+v", byID, created)
	}

	bySlug, err := s.FindBySlug(created.Slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != created.ID {
		t.Errorf("FindBySlug = %+v, want id %s", bySlug, created.ID)
	}
}

// TestCategoryStore_UpdateRecomputesSlug verifies the slug always follows
// the name through updates.
func TestCategoryStore_UpdateRecomputesSlug(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	created, err := s.Create(&models.Category{Name: "Old Name"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanCategories(t, db, created.ID) })

	updated, err := s.Update(created.ID, &models.Category{
		Name:        "Brand New Name",
		Description: "renamed",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("Update: category not found")
	}
	if updated.Slug != "brand-new-name" {
		t.Errorf("Slug = %q, want brand-new-name", updated.Slug)
	}

	// Same name again: slug unchanged.
	again, err := s.Update(created.ID, &models.Category{Name: "Brand New Name"})
	if err != nil {
		t.Fatalf("Update again: %v", err)
	}
	if again.Slug != "brand-new-name" {
		t.Errorf("Slug after no-op rename = %q, want brand-new-name", again.Slug)
	}
}

// TestCategoryStore_UpdateMissing verifies updating a nonexistent id reports
// not-found rather than an error.
func TestCategoryStore_UpdateMissing(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	got, err := s.Update("no-such-id", &models.Category{Name: "Whatever"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got != nil {
		t.Errorf("Update missing = %+v, want nil", got)
	}
}

// TestCategoryStore_DeletePrunesProductReferences verifies that deleting a
// category removes its id from product category lists without deleting the
// products themselves.
func TestCategoryStore_DeletePrunesProductReferences(t *testing.T) {
	db := testDB(t)
	cats := NewCategoryStore(db)
	prods := NewProductStore(db)

	keep, err := cats.Create(&models.Category{Name: "Keep Me"})
	if err != nil {
		t.Fatalf("Create keep: %v", err)
	}
	doomed, err := cats.Create(&models.Category{Name: "Doomed"})
	if err != nil {
		t.Fatalf("Create doomed: %v", err)
	}
	t.Cleanup(func() { cleanCategories(t, db, keep.ID, doomed.ID) })

	p, err := prods.Create(&models.Product{
		Name:        "Cross-listed Widget",
		Description: "belongs to both categories",
		Price:       9.99,
		ImageURL:    "https://example.com/widget.png",
		CategoryIDs: []string{keep.ID, doomed.ID},
		Tags:        []string{"widget"},
	})
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}
	t.Cleanup(func() { cleanProducts(t, db, p.ID) })

	removed, err := cats.Delete(doomed.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatal("Delete: reported no row removed")
	}

	after, err := prods.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if after == nil {
		t.Fatal("product was deleted as a side effect")
	}
	if strings.Join(after.CategoryIDs, ",") != keep.ID {
		t.Errorf("CategoryIDs = %v, want [%s]", after.CategoryIDs, keep.ID)
	}
}

// TestCategoryStore_DeleteMissing verifies deleting a nonexistent id
// reports false without error.
func TestCategoryStore_DeleteMissing(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	removed, err := s.Delete("no-such-id")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Error("Delete missing = true, want false")
	}
}

// TestCategoryStore_WritesFailLoudly verifies that write operations against
// an unreachable database surface errors instead of being swallowed.
func TestCategoryStore_WritesFailLoudly(t *testing.T) {
	s := NewCategoryStore(unreachableDB(t))

	if _, err := s.Create(&models.Category{Name: "Nope"}); err == nil {
		t.Error("Create against unreachable DB: expected error")
	}
	if _, err := s.Update("x", &models.Category{Name: "Nope"}); err == nil {
		t.Error("Update against unreachable DB: expected error")
	}
	if _, err := s.Delete("x"); err == nil {
		t.Error("Delete against unreachable DB: expected error")
	}
}
