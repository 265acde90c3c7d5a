// internal/app/store/accounts/accountstore_test.go
package accountstore_test

import (
	"testing"

	accountstore "github.com/syneroa/platform/internal/app/store/accounts"
	"github.com/syneroa/platform/internal/domain/models"
	"github.com/syneroa/platform/internal/testutil"
)

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := accountstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Account{
		Name:         "Casey Morgan",
		Email:        "Casey@Example.edu",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Role != "user" {
		t.Errorf("expected default role 'user', got %q", created.Role)
	}
	if created.Status != "active" {
		t.Errorf("expected default status 'active', got %q", created.Status)
	}
	if created.EmailCI == "" || created.EmailCI == created.Email {
		t.Errorf("expected EmailCI to be case-folded, got %q", created.EmailCI)
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := accountstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Account{
		Name:         "Casey Morgan",
		Email:        "casey@example.edu",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByEmail(ctx, "CASEY@EXAMPLE.EDU")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if found.Email != "casey@example.edu" {
		t.Errorf("Email: got %q, want %q", found.Email, "casey@example.edu")
	}
}

func TestStore_SetRole_Invalid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := accountstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Account{
		Name:         "X",
		Email:        "x@example.com",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetRole(ctx, created.ID, "superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if err := store.SetRole(ctx, created.ID, "admin"); err != nil {
		t.Fatalf("SetRole(admin) failed: %v", err)
	}
}
