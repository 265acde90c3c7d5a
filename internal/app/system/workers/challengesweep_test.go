// internal/app/system/workers/challengesweep_test.go
package workers

import (
	"testing"
	"time"

	challengestore "github.com/syneroa/platform/internal/app/store/challenges"
	"github.com/syneroa/platform/internal/testutil"
	"go.uber.org/zap"
)

func TestSweep_DeactivatesExpiredChallenges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	expired := fx.CreateChallenge(ctx, "Past Deadline")
	if _, err := db.Collection("challenges").UpdateByID(ctx, expired.ID,
		map[string]any{"$set": map[string]any{
			"deadline": time.Now().UTC().Add(-time.Hour),
		}}); err != nil {
		t.Fatal(err)
	}
	current := fx.CreateChallenge(ctx, "Still Open")

	store := challengestore.New(db)
	w := NewChallengeSweep(store, zap.NewNop(), time.Hour)
	w.sweep()

	got, err := store.GetByID(ctx, expired.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "inactive" {
		t.Errorf("expired challenge status = %q, want inactive", got.Status)
	}

	got, err = store.GetByID(ctx, current.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "active" {
		t.Errorf("open challenge status = %q, want active", got.Status)
	}
}

func TestStartStop(t *testing.T) {
	db := testutil.SetupTestDB(t)

	w := NewChallengeSweep(challengestore.New(db), zap.NewNop(), 50*time.Millisecond)
	w.Start()
	time.Sleep(120 * time.Millisecond)
	w.Stop()
	// Stop must wait for the loop to exit without panicking or hanging.
}
