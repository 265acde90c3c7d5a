// internal/app/store/blogposts/blogpoststore.go
package blogpoststore

import (
	"context"
	"errors"
	"strings"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/syneroa/platform/internal/app/store/records"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *records.Collection[models.BlogPost]
}

var ErrDuplicateTitle = errors.New("a post with this title already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.BlogPost](db, "blog_posts")}
}

// Create inserts a post as a draft unless a status is supplied.
func (s *Store) Create(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	now := records.Now()

	p.ID = primitive.NewObjectID()
	p.TitleCI = text.Fold(p.Title)
	if p.Status == "" {
		p.Status = status.Publication.Initial()
	}
	p.CreatedAt = now
	p.UpdatedAt = &now

	if strings.TrimSpace(p.Title) == "" {
		return models.BlogPost{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(p.Content) == "" {
		return models.BlogPost{}, mongo.CommandError{Message: "content is required"}
	}
	if !status.Publication.Valid(p.Status) {
		return models.BlogPost{}, mongo.CommandError{Message: "status must be 'draft' or 'published'"}
	}

	if err := s.c.Insert(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.BlogPost{}, ErrDuplicateTitle
		}
		return models.BlogPost{}, err
	}
	return p, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.BlogPost) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Title) != "" {
		set["title"] = mut.Title
		set["title_ci"] = text.Fold(mut.Title)
	}
	if strings.TrimSpace(mut.Content) != "" {
		set["content"] = mut.Content
	}
	set["excerpt"] = mut.Excerpt
	set["category"] = mut.Category
	set["image"] = mut.Image
	if mut.Tags != nil {
		set["tags"] = mut.Tags
	}
	if mut.Status != "" {
		if !status.Publication.Valid(mut.Status) {
			return mongo.CommandError{Message: "status must be 'draft' or 'published'"}
		}
		set["status"] = mut.Status
	}
	set["updated_at"] = records.Now()

	err := s.c.UpdateFields(ctx, id, set)
	if wafflemongo.IsDup(err) {
		return ErrDuplicateTitle
	}
	return err
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.BlogPost, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

// ListPublished returns the posts visible on the public blog.
func (s *Store) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	return s.c.ListNewest(ctx, bson.M{"status": status.Published})
}

func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, v string) error {
	if !status.Publication.Valid(v) {
		return mongo.CommandError{Message: "status must be 'draft' or 'published'"}
	}
	return s.c.SetStatus(ctx, id, v)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
