// internal/app/store/solutions/solutionstore.go
package solutionstore

import (
	"context"
	"strings"

	"github.com/syneroa/platform/internal/app/store/records"
	"github.com/syneroa/platform/internal/app/system/paging"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *records.Collection[models.Solution]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Solution](db, "solutions")}
}

// Create inserts a submitted solution. New solutions always start
// pending; approval happens later from the admin panel.
func (s *Store) Create(ctx context.Context, sol models.Solution) (models.Solution, error) {
	sol.ID = primitive.NewObjectID()
	sol.Status = status.Review.Initial()
	sol.CreatedAt = records.Now()

	if strings.TrimSpace(sol.Title) == "" {
		return models.Solution{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(sol.Description) == "" {
		return models.Solution{}, mongo.CommandError{Message: "description is required"}
	}
	if strings.TrimSpace(sol.Author) == "" {
		return models.Solution{}, mongo.CommandError{Message: "author is required"}
	}

	if err := s.c.Insert(ctx, sol); err != nil {
		return models.Solution{}, err
	}
	return sol, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Solution, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

// ListAll returns every solution, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Solution, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

// ListPage returns one page of solutions, newest first, starting at
// the 1-based index. Fetches one extra row past the page size so the
// caller can detect a next page.
func (s *Store) ListPage(ctx context.Context, start int) ([]models.Solution, error) {
	return s.c.Find(ctx, bson.M{}, paging.FindOptions(start))
}

// ListApproved returns the solutions shown publicly.
func (s *Store) ListApproved(ctx context.Context) ([]models.Solution, error) {
	return s.c.ListNewest(ctx, bson.M{"status": status.Approved})
}

// ListApprovedByChallenge returns the approved solutions submitted
// against one challenge. Pending and rejected submissions stay out of
// the public challenge view.
func (s *Store) ListApprovedByChallenge(ctx context.Context, challengeID primitive.ObjectID) ([]models.Solution, error) {
	return s.c.ListNewest(ctx, bson.M{"challenge_id": challengeID, "status": status.Approved})
}

// SetStatus overwrites the review status. No transition check: a
// rejected solution can be approved later, and vice versa.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, v string) error {
	if !status.Review.Valid(v) {
		return mongo.CommandError{Message: "status must be 'pending', 'approved', or 'rejected'"}
	}
	return s.c.SetStatus(ctx, id, v)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
