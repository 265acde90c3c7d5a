// internal/app/system/authz/authz_test.go
package authz_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func withUser(r *http.Request, email, role string) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test User",
		Email: email,
		Role:  role,
	})
}

func TestIsAdmin_ByRole(t *testing.T) {
	c := &authz.Checker{}

	req := httptest.NewRequest("GET", "/", nil)
	req = withUser(req, "someone@example.com", "admin")

	if !c.IsAdmin(req) {
		t.Error("expected admin role to pass IsAdmin")
	}
}

func TestIsAdmin_ByConfiguredEmail(t *testing.T) {
	c := &authz.Checker{AdminEmail: "owner@syneroa.org"}

	req := httptest.NewRequest("GET", "/", nil)
	req = withUser(req, "Owner@Syneroa.org", "user")

	if !c.IsAdmin(req) {
		t.Error("expected configured admin email to pass IsAdmin regardless of role")
	}
}

func TestIsAdmin_PlainUser(t *testing.T) {
	c := &authz.Checker{AdminEmail: "owner@syneroa.org"}

	req := httptest.NewRequest("GET", "/", nil)
	req = withUser(req, "student@example.edu", "user")

	if c.IsAdmin(req) {
		t.Error("expected plain user to fail IsAdmin")
	}
}

func TestIsAdmin_Anonymous(t *testing.T) {
	c := &authz.Checker{AdminEmail: "owner@syneroa.org"}

	req := httptest.NewRequest("GET", "/", nil)
	if c.IsAdmin(req) {
		t.Error("expected anonymous request to fail IsAdmin")
	}
}

func TestRequireAdmin(t *testing.T) {
	c := &authz.Checker{}
	handler := c.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Anonymous → 401 with the shared JSON error body.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected 401, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("anonymous: expected JSON content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "not signed in") {
		t.Errorf("anonymous: unexpected body %q", rec.Body.String())
	}

	// Signed in, not admin → 403, also JSON.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, withUser(httptest.NewRequest("GET", "/admin", nil), "u@example.com", "user"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin: expected 403, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("non-admin: expected JSON content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "forbidden") {
		t.Errorf("non-admin: unexpected body %q", rec.Body.String())
	}

	// Admin → 200.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, withUser(httptest.NewRequest("GET", "/admin", nil), "a@example.com", "admin"))
	if rec.Code != http.StatusOK {
		t.Errorf("admin: expected 200, got %d", rec.Code)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "not-an-object-id", Role: "admin"})

	role, _, _, ok := authz.UserCtx(req)
	if ok {
		t.Error("expected ok=false for malformed user ID")
	}
	if role != "visitor" {
		t.Errorf("expected role 'visitor', got %q", role)
	}
}
