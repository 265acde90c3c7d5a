// internal/app/store/capstones/capstonestore.go
package capstonestore

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
	c *records.Collection[models.CapstoneProject]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.CapstoneProject](db, "capstone_projects")}
}

// Create inserts a capstone project. New projects start in_review.
func (s *Store) Create(ctx context.Context, cp models.CapstoneProject) (models.CapstoneProject, error) {
	cp.ID = primitive.NewObjectID()
	cp.Status = status.CapstoneReview.Initial()
	cp.CreatedAt = records.Now()

	if strings.TrimSpace(cp.Title) == "" {
		return models.CapstoneProject{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(cp.Description) == "" {
		return models.CapstoneProject{}, mongo.CommandError{Message: "description is required"}
	}
	if strings.TrimSpace(cp.Author) == "" {
		return models.CapstoneProject{}, mongo.CommandError{Message: "author is required"}
	}

	if err := s.c.Insert(ctx, cp); err != nil {
		return models.CapstoneProject{}, err
	}
	return cp, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.CapstoneProject, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.CapstoneProject, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

func (s *Store) ListApproved(ctx context.Context) ([]models.CapstoneProject, error) {
	return s.c.ListNewest(ctx, bson.M{"status": status.Approved})
}

func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, v string) error {
	if !status.CapstoneReview.Valid(v) {
		return mongo.CommandError{Message: "status must be 'in_review', 'approved', or 'rejected'"}
	}
	return s.c.SetStatus(ctx, id, v)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
