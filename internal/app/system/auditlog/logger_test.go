// internal/app/system/auditlog/logger_test.go
package auditlog_test

import (
	"context"
	"net/http/httptest"
	"testing"

	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/testutil"
	"go.uber.org/zap"
)

func TestRecord_ActorFromSession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auditstore.New(db)
	l := auditlog.New(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewAuthenticatedRequest("POST", "/challenges", testutil.AdminUser())
	l.Record(ctx, req, "create", "challenge", "abc123", "Grid Optimization")

	events, err := store.ListRecent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Actor != "admin@test.com" {
		t.Errorf("actor = %q, want the session user's email", events[0].Actor)
	}
	if events[0].Action != "create" || events[0].Entity != "challenge" {
		t.Errorf("event = %+v", events[0])
	}
}

func TestRecord_SystemActorWithoutRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auditstore.New(db)
	l := auditlog.New(store, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	l.Record(ctx, nil, "deactivate", "challenge", "abc123", "")

	events, err := store.ListRecent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Actor != "system" {
		t.Errorf("events = %+v, want one with actor system", events)
	}
}

func TestRecord_NilLoggerIsNoop(t *testing.T) {
	var l *auditlog.Logger
	// Must not panic.
	l.Record(context.Background(), httptest.NewRequest("GET", "/", nil), "a", "b", "c", "")
}
