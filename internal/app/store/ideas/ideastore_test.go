// internal/app/store/ideas/ideastore_test.go
package ideastore_test

import (
	"testing"
	"time"

	ideastore "github.com/syneroa/platform/internal/app/store/ideas"
	"github.com/syneroa/platform/internal/domain/models"
	"github.com/syneroa/platform/internal/testutil"
)

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ideastore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().UTC().Add(-time.Second)
	created, err := store.Create(ctx, models.Idea{
		Title:       "Peer Tutoring Exchange",
		Description: "Students trade tutoring hours across subjects",
		Author:      "Riley",
		Email:       "riley@example.edu",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	after := time.Now().UTC().Add(time.Second)

	if created.Status != "pending" {
		t.Errorf("expected status 'pending', got %q", created.Status)
	}
	if created.CreatedAt.Before(before) || created.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v outside expected window [%v, %v]", created.CreatedAt, before, after)
	}
}

func TestStore_CreateAndGetByID_Roundtrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ideastore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Idea{
		Title:       "Bike Share Revival",
		Description: "d",
		Author:      "A",
		Tags:        []string{"transport", "sustainability"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Title != created.Title {
		t.Errorf("Title: got %q, want %q", found.Title, created.Title)
	}
	if len(found.Tags) != 2 {
		t.Errorf("Tags: got %v, want 2 entries", found.Tags)
	}
}

func TestStore_Create_MissingDescription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ideastore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Idea{Title: "No Description"})
	if err == nil {
		t.Fatal("expected error for missing description")
	}
}
