// internal/app/features/blog/handler_test.go
package blog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syneroa/platform/internal/app/features/blog"
	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	commentstore "github.com/syneroa/platform/internal/app/store/comments"
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/domain/models"
	"github.com/syneroa/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*blog.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	audit := auditlog.New(auditstore.New(db), logger)
	return blog.NewHandler(db, audit, logger), db
}

func TestCreate_SanitizesContent(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"title":"Launch Notes","content":"<p>Hello</p><script>alert(1)</script>","author":"Team","status":"published"}`
	req := httptest.NewRequest("POST", "/blog", strings.NewReader(body))
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.BlogPost
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got.Content, "<script>") {
		t.Errorf("content still contains script tag: %q", got.Content)
	}
	if !strings.Contains(got.Content, "<p>Hello</p>") {
		t.Errorf("safe markup was stripped: %q", got.Content)
	}
}

func TestServeList_OnlyPublished(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateBlogPost(ctx, "Public Post", "published")
	fx.CreateBlogPost(ctx, "Draft Post", "draft")

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/blog", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Posts []models.BlogPost `json:"posts"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Posts) != 1 || body.Posts[0].Title != "Public Post" {
		t.Errorf("got %d posts, want only the published one", len(body.Posts))
	}
}

func TestServeGet_DraftIsNotFound(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	draft := fx.CreateBlogPost(ctx, "Unpublished Notes", "draft")
	live := fx.CreateBlogPost(ctx, "Launch Post", "published")

	get := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/blog/"+id, nil)
		req = testutil.WithChiURLParam(req, "id", id)
		rec := httptest.NewRecorder()
		h.ServeGet(rec, req)
		return rec
	}

	if rec := get(draft.ID.Hex()); rec.Code != http.StatusNotFound {
		t.Errorf("draft detail: status = %d, want 404", rec.Code)
	}
	if rec := get(live.ID.Hex()); rec.Code != http.StatusOK {
		t.Errorf("published detail: status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestComment_AuthorComesFromSession(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fx.CreateBlogPost(ctx, "Discussed Post", "published")

	req := httptest.NewRequest("POST", "/blog/"+post.ID.Hex()+"/comments",
		strings.NewReader(`{"content":"Nice <b>work</b><script>x()</script>"}`))
	req = testutil.WithUser(req, testutil.RegularUser())
	req = testutil.WithChiURLParam(req, "id", post.ID.Hex())

	rec := httptest.NewRecorder()
	h.HandleComment(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var got models.Comment
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Author != "Test User" {
		t.Errorf("author = %q, want the session user's name", got.Author)
	}
	if strings.Contains(got.Content, "script") {
		t.Errorf("comment content not sanitized: %q", got.Content)
	}
}

func TestDeletePost_RemovesComments(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fx.CreateBlogPost(ctx, "Short Lived", "published")
	comments := commentstore.New(db)
	if _, err := comments.Create(ctx, models.Comment{
		PostID: post.ID, Author: "A", Content: "first",
	}); err != nil {
		t.Fatal(err)
	}

	req := testutil.WithChiURLParam(
		httptest.NewRequest("DELETE", "/blog/x", nil), "id", post.ID.Hex())
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}

	left, err := comments.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 0 {
		t.Errorf("%d comments left after post deletion, want 0", len(left))
	}
}
