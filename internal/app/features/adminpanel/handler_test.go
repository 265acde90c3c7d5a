// internal/app/features/adminpanel/handler_test.go
package adminpanel_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/syneroa/platform/internal/app/features/adminpanel"
	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*adminpanel.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	audit := auditlog.New(auditstore.New(db), logger)
	return adminpanel.NewHandler(db, audit, logger), db
}

func TestServeOverview_AllSections(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateChallenge(ctx, "One Challenge")
	fx.CreateSolution(ctx, "One Solution", "pending")
	fx.CreateCourse(ctx, "One Course", 10, "published")

	req := testutil.NewAuthenticatedRequest("GET", "/admin/overview", testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.ServeOverview(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Sections map[string]json.RawMessage `json:"sections"`
		Errors   map[string]string          `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Errors) != 0 {
		t.Errorf("errors = %v, want none", body.Errors)
	}

	want := []string{
		"challenges", "solutions", "problems", "capstoneProjects", "ideas",
		"blogPosts", "programs", "partnerApplications", "contactMessages", "courses",
	}
	for _, name := range want {
		if _, ok := body.Sections[name]; !ok {
			t.Errorf("missing section %q", name)
		}
	}
}

func TestServeStats(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateChallenge(ctx, "C1")
	fx.CreateChallenge(ctx, "C2")
	fx.CreateSolution(ctx, "S pending", "pending")
	fx.CreateSolution(ctx, "S approved", "approved")
	fx.CreateContactMessage(ctx, "a@example.com", "unread")
	fx.CreateContactMessage(ctx, "b@example.com", "read")
	fx.CreateCourse(ctx, "Course", 0, "published")

	req := testutil.NewAuthenticatedRequest("GET", "/admin/stats", testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.ServeStats(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Challenges       int64 `json:"challenges"`
		PendingSolutions int64 `json:"pendingSolutions"`
		UnreadMessages   int64 `json:"unreadMessages"`
		PublishedCourses int64 `json:"publishedCourses"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Challenges != 2 {
		t.Errorf("challenges = %d, want 2", got.Challenges)
	}
	if got.PendingSolutions != 1 {
		t.Errorf("pendingSolutions = %d, want 1", got.PendingSolutions)
	}
	if got.UnreadMessages != 1 {
		t.Errorf("unreadMessages = %d, want 1", got.UnreadMessages)
	}
	if got.PublishedCourses != 1 {
		t.Errorf("publishedCourses = %d, want 1", got.PublishedCourses)
	}
}
