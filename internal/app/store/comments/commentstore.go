// internal/app/store/comments/commentstore.go
package commentstore

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
	c *records.Collection[models.Comment]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Comment](db, "comments")}
}

func (s *Store) Create(ctx context.Context, cm models.Comment) (models.Comment, error) {
	cm.ID = primitive.NewObjectID()
	cm.CreatedAt = records.Now()

	if cm.PostID.IsZero() {
		return models.Comment{}, mongo.CommandError{Message: "post id is required"}
	}
	if strings.TrimSpace(cm.Content) == "" {
		return models.Comment{}, mongo.CommandError{Message: "content is required"}
	}

	if err := s.c.Insert(ctx, cm); err != nil {
		return models.Comment{}, err
	}
	return cm, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Comment, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

// ListByPost returns the comments under one post, newest first.
func (s *Store) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	return s.c.ListNewest(ctx, bson.M{"post_id": postID})
}

// DeleteByPost removes all comments under a post, used when the post
// itself is deleted.
func (s *Store) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	res, err := s.c.Raw().DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
