// internal/app/store/courses/coursestore.go
package coursestore

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
	c *records.Collection[models.Course]
}

var ErrDuplicateTitle = errors.New("a course with this title already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Course](db, "courses")}
}

// Create inserts a course as a draft with a zeroed student count.
func (s *Store) Create(ctx context.Context, co models.Course) (models.Course, error) {
	now := records.Now()

	co.ID = primitive.NewObjectID()
	co.TitleCI = text.Fold(co.Title)
	if co.Status == "" {
		co.Status = status.Publication.Initial()
	}
	co.Students = 0
	co.CreatedAt = now
	co.UpdatedAt = &now

	if strings.TrimSpace(co.Title) == "" {
		return models.Course{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(co.Instructor) == "" {
		return models.Course{}, mongo.CommandError{Message: "instructor is required"}
	}
	if co.Price < 0 {
		return models.Course{}, mongo.CommandError{Message: "price cannot be negative"}
	}
	if !status.Publication.Valid(co.Status) {
		return models.Course{}, mongo.CommandError{Message: "status must be 'draft' or 'published'"}
	}

	if err := s.c.Insert(ctx, co); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Course{}, ErrDuplicateTitle
		}
		return models.Course{}, err
	}
	return co, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Course) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Title) != "" {
		set["title"] = mut.Title
		set["title_ci"] = text.Fold(mut.Title)
	}
	if strings.TrimSpace(mut.Description) != "" {
		set["description"] = mut.Description
	}
	if strings.TrimSpace(mut.Instructor) != "" {
		set["instructor"] = mut.Instructor
	}
	if mut.Price >= 0 {
		set["price"] = mut.Price
	}
	set["duration"] = mut.Duration
	set["level"] = mut.Level
	set["category"] = mut.Category
	set["image"] = mut.Image
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

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.Course, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

// ListPublished returns the catalog shown to students.
func (s *Store) ListPublished(ctx context.Context) ([]models.Course, error) {
	return s.c.ListNewest(ctx, bson.M{"status": status.Published})
}

func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, v string) error {
	if !status.Publication.Valid(v) {
		return mongo.CommandError{Message: "status must be 'draft' or 'published'"}
	}
	return s.c.SetStatus(ctx, id, v)
}

// AddStudent bumps the student count after an enrollment completes.
// Read-then-write on purpose: the count is display-only.
func (s *Store) AddStudent(ctx context.Context, id primitive.ObjectID) (int, error) {
	co, err := s.c.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	next := co.Students + 1
	if err := s.c.UpdateFields(ctx, id, bson.M{"students": next}); err != nil {
		return 0, err
	}
	return next, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
