// internal/app/features/solutions/handler_test.go
package solutions_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syneroa/platform/internal/app/features/solutions"
	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	solutionstore "github.com/syneroa/platform/internal/app/store/solutions"
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/app/system/filestore"
	"github.com/syneroa/platform/internal/domain/models"
	"github.com/syneroa/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*solutions.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	files, err := filestore.NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	audit := auditlog.New(auditstore.New(db), logger)
	return solutions.NewHandler(db, files, audit, logger), db
}

func multipartSubmit(t *testing.T, fields map[string]string, filename string, pdf []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if pdf != nil {
		fw, err := mw.CreateFormFile("pdf", filename)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(pdf); err != nil {
			t.Fatal(err)
		}
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/solutions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSubmit_StartsPending(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, multipartSubmit(t, map[string]string{
		"title":       "Smart Irrigation",
		"description": "Drip system with soil sensors",
		"author":      "R. Okafor",
		"university":  "TU Delft",
		"category":    "Agriculture",
		"tags":        "iot, water",
	}, "", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Solution
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Status != "pending" {
		t.Errorf("status = %q, want pending", got.Status)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags = %v, want 2 entries", got.Tags)
	}
	if got.PDFURL != "" {
		t.Errorf("pdf url = %q, want empty without attachment", got.PDFURL)
	}
}

func TestSubmit_WithPDF(t *testing.T) {
	h, _ := newTestHandler(t)

	pdf := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 256)...)
	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, multipartSubmit(t, map[string]string{
		"title":       "With Attachment",
		"description": "D",
		"author":      "A",
	}, "solution.pdf", pdf))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Solution
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got.PDFURL, "/uploads/") {
		t.Errorf("pdf url = %q, want /uploads/ prefix", got.PDFURL)
	}
}

func TestSubmit_RejectsNonPDF(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, multipartSubmit(t, map[string]string{
		"title":       "Bad File",
		"description": "D",
		"author":      "A",
	}, "notes.txt", []byte("just plain text, not a pdf")))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 for a non-PDF upload", rec.Code)
	}
}

func TestSubmit_MissingRequiredField(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, multipartSubmit(t, map[string]string{
		"title": "No Description",
	}, "", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestServeList_CategoryAndSearch(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []struct{ title, category string }{
		{"Solar Microgrid", "Energy"},
		{"Wind Forecasting", "Energy"},
		{"Soil Sensors", "Agriculture"},
	}
	for _, s := range seed {
		sol := fx.CreateSolution(ctx, s.title, "approved")
		if _, err := db.Collection("solutions").UpdateByID(ctx, sol.ID,
			map[string]any{"$set": map[string]any{"category": s.category}}); err != nil {
			t.Fatal(err)
		}
	}
	fx.CreateSolution(ctx, "Still Pending", "pending")

	serve := func(target string) (list []models.Solution, categories []string) {
		t.Helper()
		rec := httptest.NewRecorder()
		h.ServeList(rec, httptest.NewRequest("GET", target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var body struct {
			Solutions  []models.Solution `json:"solutions"`
			Categories []string          `json:"categories"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		return body.Solutions, body.Categories
	}

	list, cats := serve("/solutions")
	if len(list) != 3 {
		t.Errorf("unfiltered: %d solutions, want 3 approved", len(list))
	}
	if len(cats) == 0 || cats[0] != "All" {
		t.Errorf("categories = %v, want All first", cats)
	}

	list, _ = serve("/solutions?category=Energy")
	if len(list) != 2 {
		t.Errorf("category filter: %d, want 2", len(list))
	}

	list, _ = serve("/solutions?category=All&search=SOLAR")
	if len(list) != 1 || list[0].Title != "Solar Microgrid" {
		t.Errorf("search: got %d results", len(list))
	}
}

func TestServeList_ChallengeFilterHidesUnreviewed(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	chID := primitive.NewObjectID()
	seed := []struct{ title, status string }{
		{"Approved Entry", "approved"},
		{"Pending Entry", "pending"},
		{"Rejected Entry", "rejected"},
	}
	for _, s := range seed {
		sol := fx.CreateSolution(ctx, s.title, s.status)
		if _, err := db.Collection("solutions").UpdateByID(ctx, sol.ID,
			map[string]any{"$set": map[string]any{"challenge_id": chID}}); err != nil {
			t.Fatal(err)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/solutions?challengeId="+chID.Hex(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Solutions []models.Solution `json:"solutions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Solutions) != 1 || body.Solutions[0].Title != "Approved Entry" {
		t.Fatalf("challenge list = %+v, want only the approved entry", body.Solutions)
	}
}

func TestApprove_OverwritesStatus(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sol := fx.CreateSolution(ctx, "Review Me", "rejected")

	req := testutil.WithChiURLParam(
		httptest.NewRequest("POST", "/solutions/x/approve", nil), "id", sol.ID.Hex())
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.HandleApprove(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	got, err := solutionstore.New(db).GetByID(ctx, sol.ID)
	if err != nil {
		t.Fatal(err)
	}
	// A rejected solution can still be approved; no transition rules.
	if got.Status != "approved" {
		t.Errorf("status = %q, want approved", got.Status)
	}
}

func TestServeListAll_Paged(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 55; i++ {
		fx.CreateSolution(ctx, "Entry", "pending")
	}

	req := httptest.NewRequest("GET", "/solutions/all", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.ServeListAll(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Solutions []models.Solution `json:"solutions"`
		Page      struct {
			HasPrev bool `json:"hasPrev"`
			HasNext bool `json:"hasNext"`
		} `json:"page"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Solutions) != 50 {
		t.Errorf("page size = %d, want 50", len(body.Solutions))
	}
	if !body.Page.HasNext || body.Page.HasPrev {
		t.Errorf("page flags = %+v", body.Page)
	}

	req = httptest.NewRequest("GET", "/solutions/all?start=51", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec = httptest.NewRecorder()
	h.ServeListAll(rec, req)
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Solutions) != 5 {
		t.Errorf("second page = %d rows, want 5", len(body.Solutions))
	}
	if body.Page.HasNext || !body.Page.HasPrev {
		t.Errorf("second page flags = %+v", body.Page)
	}
}
