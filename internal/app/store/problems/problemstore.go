// internal/app/store/problems/problemstore.go
package problemstore

import (
	"context"
	"strings"

	"github.com/syneroa/platform/internal/app/store/records"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *records.Collection[models.Problem]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Problem](db, "problems")}
}

// Create inserts a community problem with a zeroed vote count.
func (s *Store) Create(ctx context.Context, p models.Problem) (models.Problem, error) {
	p.ID = primitive.NewObjectID()
	p.Votes = 0
	p.CreatedAt = records.Now()

	if strings.TrimSpace(p.Title) == "" {
		return models.Problem{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(p.Description) == "" {
		return models.Problem{}, mongo.CommandError{Message: "description is required"}
	}

	if err := s.c.Insert(ctx, p); err != nil {
		return models.Problem{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Problem, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

// ListAll returns every problem, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Problem, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

// Upvote reads the current vote count and writes count+1 back. Two
// concurrent upvotes can land on the same base value and record a
// single vote; the count is a rough popularity signal, not a tally.
func (s *Store) Upvote(ctx context.Context, id primitive.ObjectID) (int, error) {
	p, err := s.c.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	next := p.Votes + 1
	if err := s.c.UpdateFields(ctx, id, bson.M{"votes": next}); err != nil {
		return 0, err
	}
	return next, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
