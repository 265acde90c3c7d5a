// internal/app/store/solutions/solutionstore_test.go
package solutionstore_test

import (
	"testing"

	solutionstore "github.com/syneroa/platform/internal/app/store/solutions"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/domain/models"
	"github.com/syneroa/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_StartsPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := solutionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Solution{
		Title:       "Solar Water Heater",
		Description: "Cheap solar heating for dorms",
		Author:      "Jordan Lee",
		// Caller-supplied status is ignored; submissions always enter
		// the review queue as pending.
		Status: "approved",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != "pending" {
		t.Errorf("expected status 'pending', got %q", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_MissingAuthor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := solutionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Solution{
		Title:       "No Author",
		Description: "d",
	})
	if err == nil {
		t.Fatal("expected error for missing author")
	}
}

func TestStore_SetStatus_ApproveAfterReject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := solutionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Solution{
		Title:       "Reconsidered Solution",
		Description: "d",
		Author:      "A",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetStatus(ctx, created.ID, "rejected"); err != nil {
		t.Fatalf("SetStatus(rejected) failed: %v", err)
	}
	// A rejected solution can still be approved later.
	if err := store.SetStatus(ctx, created.ID, "approved"); err != nil {
		t.Fatalf("SetStatus(approved) failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Status != "approved" {
		t.Errorf("expected status 'approved', got %q", found.Status)
	}
}

func TestStore_SetStatus_InvalidValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := solutionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Solution{
		Title:       "S",
		Description: "d",
		Author:      "A",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetStatus(ctx, created.ID, "published"); err == nil {
		t.Fatal("expected error for out-of-vocabulary status")
	}
}

func TestStore_SetStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := solutionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.SetStatus(ctx, primitive.NewObjectID(), "approved")
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_ListApproved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := solutionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	approved, err := store.Create(ctx, models.Solution{Title: "A", Description: "d", Author: "x"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.SetStatus(ctx, approved.ID, "approved"); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Solution{Title: "B", Description: "d", Author: "y"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	out, err := store.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 approved solution, got %d", len(out))
	}
	if out[0].ID != approved.ID {
		t.Errorf("unexpected solution in approved list: %v", out[0].ID)
	}
}

func TestStore_ListApprovedByChallenge(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := solutionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	chID := primitive.NewObjectID()
	approved, err := store.Create(ctx, models.Solution{
		Title: "For Challenge", Description: "d", Author: "x", ChallengeID: &chID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.SetStatus(ctx, approved.ID, status.Approved); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	// Still pending: must not appear.
	if _, err := store.Create(ctx, models.Solution{
		Title: "Pending Entry", Description: "d", Author: "y", ChallengeID: &chID,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	// Approved but for no challenge: must not appear either.
	other, err := store.Create(ctx, models.Solution{
		Title: "Standalone", Description: "d", Author: "z",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.SetStatus(ctx, other.ID, status.Approved); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	out, err := store.ListApprovedByChallenge(ctx, chID)
	if err != nil {
		t.Fatalf("ListApprovedByChallenge failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 approved solution for challenge, got %d", len(out))
	}
	if out[0].ID != approved.ID {
		t.Errorf("unexpected solution in challenge list: %v", out[0].ID)
	}
}
