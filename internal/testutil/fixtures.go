// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateChallenge creates an active test challenge with the given title.
func (f *Fixtures) CreateChallenge(ctx context.Context, title string) models.Challenge {
	f.t.Helper()

	now := time.Now().UTC()
	ch := models.Challenge{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test challenge description",
		Prize:       "$1,000",
		Deadline:    now.Add(30 * 24 * time.Hour),
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   &now,
	}

	if _, err := f.db.Collection("challenges").InsertOne(ctx, ch); err != nil {
		f.t.Fatalf("failed to create test challenge: %v", err)
	}
	return ch
}

// CreateSolution creates a test solution with the given status.
func (f *Fixtures) CreateSolution(ctx context.Context, title, status string) models.Solution {
	f.t.Helper()

	sol := models.Solution{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test solution description",
		Author:      "Test Author",
		University:  "Test University",
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("solutions").InsertOne(ctx, sol); err != nil {
		f.t.Fatalf("failed to create test solution: %v", err)
	}
	return sol
}

// CreateProblem creates a test problem with the given vote count.
func (f *Fixtures) CreateProblem(ctx context.Context, title string, votes int) models.Problem {
	f.t.Helper()

	p := models.Problem{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test problem description",
		SubmittedBy: "Test Submitter",
		Votes:       votes,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("problems").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test problem: %v", err)
	}
	return p
}

// CreateBlogPost creates a test post with the given status.
func (f *Fixtures) CreateBlogPost(ctx context.Context, title, status string) models.BlogPost {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.BlogPost{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Content:   "Test post content",
		Author:    "Test Author",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: &now,
	}

	if _, err := f.db.Collection("blog_posts").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test blog post: %v", err)
	}
	return p
}

// CreateCourse creates a test course with the given price and status.
func (f *Fixtures) CreateCourse(ctx context.Context, title string, price float64, status string) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	co := models.Course{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test course description",
		Instructor:  "Test Instructor",
		Price:       price,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, co); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return co
}

// CreateAccount creates a test account with the given role.
func (f *Fixtures) CreateAccount(ctx context.Context, name, email, role string) models.Account {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Account{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		EmailCI:      text.Fold(email),
		PasswordHash: "$2a$10$testhashnotausablehashvalue0000000000000000000000000",
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    &now,
	}

	if _, err := f.db.Collection("accounts").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test account: %v", err)
	}
	return a
}

// CreateContactMessage creates a test contact message with the given status.
func (f *Fixtures) CreateContactMessage(ctx context.Context, email, status string) models.ContactMessage {
	f.t.Helper()

	cm := models.ContactMessage{
		ID:        primitive.NewObjectID(),
		FirstName: "Test",
		LastName:  "Sender",
		Email:     email,
		Subject:   "Test Subject",
		Message:   "Test message body",
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("contact_messages").InsertOne(ctx, cm); err != nil {
		f.t.Fatalf("failed to create test contact message: %v", err)
	}
	return cm
}
