package pdfstore

import (
	"errors"
	"testing"
	"time"

	"github.com/cumuna/clubhub/internal/domain/models"
	"github.com/cumuna/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	res, err := store.Insert(ctx, models.Resource{
		FileName:    "guide.pdf",
		FilePath:    "123-abcd-guide.pdf",
		Size:        42,
		ContentType: "application/pdf",
		Category:    models.CategoryRulesOfProcedure,
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if res.ID.IsZero() {
		t.Error("Insert did not assign an ID")
	}
	if res.UploadedAt.IsZero() {
		t.Error("Insert did not assign UploadedAt")
	}

	got, err := store.GetByID(ctx, res.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.FileName != "guide.pdf" || got.Category != models.CategoryRulesOfProcedure {
		t.Errorf("stored record mismatch: %+v", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListSortsNewestFirstAndFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	base := time.Now().UTC().Add(-time.Hour)
	seed := []models.Resource{
		{FileName: "old.pdf", Category: models.CategoryOther, UploadedAt: base},
		{FileName: "mid.pdf", Category: models.CategoryPublicSpeaking, UploadedAt: base.Add(time.Minute)},
		{FileName: "new.pdf", Category: models.CategoryOther, UploadedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range seed {
		if _, err := store.Insert(ctx, r); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List returned %d records, want 3", len(all))
	}
	if all[0].FileName != "new.pdf" || all[2].FileName != "old.pdf" {
		t.Errorf("List not sorted newest-first: %s, %s, %s",
			all[0].FileName, all[1].FileName, all[2].FileName)
	}

	other, err := store.List(ctx, models.CategoryOther)
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(other) != 2 {
		t.Errorf("filtered List returned %d records, want 2", len(other))
	}
	for _, r := range other {
		if r.Category != models.CategoryOther {
			t.Errorf("filtered List leaked category %q", r.Category)
		}
	}
}

func TestListEmptyReturnsNonNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	resources, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resources == nil {
		t.Error("List returned nil slice for empty collection")
	}
	if len(resources) != 0 {
		t.Errorf("List returned %d records, want 0", len(resources))
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)
	res, err := store.Insert(ctx, models.Resource{FileName: "gone.pdf", Category: models.CategoryOther})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	deleted, err := store.Delete(ctx, res.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Delete count: got %d, want 1", deleted)
	}

	deleted, err = store.Delete(ctx, res.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second Delete count: got %d, want 0", deleted)
	}
}
