// internal/app/store/problems/problemstore_test.go
package problemstore_test

import (
	"testing"

	problemstore "github.com/syneroa/platform/internal/app/store/problems"
	"github.com/syneroa/platform/internal/domain/models"
	"github.com/syneroa/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_ZeroVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := problemstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Problem{
		Title:       "Food Waste in Dining Halls",
		Description: "Trays of untouched food discarded daily",
		SubmittedBy: "Sam",
		Votes:       99, // ignored; counters always start at zero
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Votes != 0 {
		t.Errorf("expected votes 0, got %d", created.Votes)
	}
}

func TestStore_Upvote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := problemstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	p := f.CreateProblem(ctx, "Popular Problem", 3)

	n, err := store.Upvote(ctx, p.ID)
	if err != nil {
		t.Fatalf("Upvote failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected votes 4 after upvote, got %d", n)
	}

	found, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Votes != 4 {
		t.Errorf("stored votes: got %d, want 4", found.Votes)
	}
}

func TestStore_Upvote_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := problemstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Upvote(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_Delete_NonExistent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := problemstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	count, err := store.Delete(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Delete should not error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 deleted for non-existent, got %d", count)
	}
}
