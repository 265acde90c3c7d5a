// internal/app/store/ideas/ideastore.go
package ideastore

import (
	"context"
	"strings"

	"github.com/syneroa/platform/internal/app/store/records"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *records.Collection[models.Idea]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Idea](db, "ideas")}
}

// Create inserts a pitched idea. New ideas always start pending.
func (s *Store) Create(ctx context.Context, idea models.Idea) (models.Idea, error) {
	idea.ID = primitive.NewObjectID()
	idea.Status = status.Review.Initial()
	idea.CreatedAt = records.Now()

	if strings.TrimSpace(idea.Title) == "" {
		return models.Idea{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(idea.Description) == "" {
		return models.Idea{}, mongo.CommandError{Message: "description is required"}
	}

	if err := s.c.Insert(ctx, idea); err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Idea, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.Idea, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

func (s *Store) ListApproved(ctx context.Context) ([]models.Idea, error) {
	return s.c.ListNewest(ctx, bson.M{"status": status.Approved})
}

func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, v string) error {
	if !status.Review.Valid(v) {
		return mongo.CommandError{Message: "status must be 'pending', 'approved', or 'rejected'"}
	}
	return s.c.SetStatus(ctx, id, v)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
