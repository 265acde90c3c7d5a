// internal/app/system/indexes/indexes_test.go
package indexes_test

import (
	"testing"

	"github.com/syneroa/platform/internal/app/system/indexes"
	"github.com/syneroa/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	// Second run must reuse everything without error.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("accounts").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("listing indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	found := false
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decode index: %v", err)
		}
		if idx["name"] == "uniq_accounts_email_ci" {
			found = true
		}
	}
	if !found {
		t.Error("expected uniq_accounts_email_ci index on accounts")
	}
}

func TestEnsureAll_UniqueEnrollmentIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Same course+account twice must violate the unique index.
	coll := db.Collection("enrollments")
	if _, err := coll.InsertOne(ctx, bson.M{"course_id": "c1", "account_id": "a1"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"course_id": "c1", "account_id": "a1"}); err == nil {
		t.Error("expected duplicate key error for second enrollment")
	}
}
