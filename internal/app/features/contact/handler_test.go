// internal/app/features/contact/handler_test.go
package contact_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syneroa/platform/internal/app/features/contact"
	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/domain/models"
	"github.com/syneroa/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*contact.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	audit := auditlog.New(auditstore.New(db), logger)
	return contact.NewHandler(db, audit, logger), db
}

func TestSubmit_StartsUnread(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/contact", strings.NewReader(
		`{"firstName":"Maya","lastName":"Lindqvist","email":"maya@example.com","subject":"Partnership","message":"We would like to sponsor a challenge."}`))
	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Status != "unread" {
		t.Errorf("status = %q, want unread", got.Status)
	}
}

func TestSubmit_RequiresEmailAndMessage(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, httptest.NewRequest("POST", "/contact",
		strings.NewReader(`{"firstName":"Maya"}`)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestMarkRead(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg := fx.CreateContactMessage(ctx, "sender@example.com", "unread")

	req := testutil.WithChiURLParam(
		httptest.NewRequest("POST", "/contact/x/read", nil), "id", msg.ID.Hex())
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.HandleMarkRead(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Status != "read" {
		t.Errorf("status = %q, want read", got.Status)
	}
}
