// internal/app/store/programs/programstore.go
package programstore

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

// ValidTypes is the closed set of program types.
var ValidTypes = []string{"fellowship", "internship", "partnership"}

func validType(v string) bool {
	for _, t := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Store struct {
	c *records.Collection[models.Program]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Program](db, "programs")}
}

func (s *Store) Create(ctx context.Context, p models.Program) (models.Program, error) {
	now := records.Now()

	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = status.Visibility.Initial()
	}
	p.CreatedAt = now
	p.UpdatedAt = &now

	if strings.TrimSpace(p.Title) == "" {
		return models.Program{}, mongo.CommandError{Message: "title is required"}
	}
	if !validType(p.Type) {
		return models.Program{}, mongo.CommandError{Message: "type must be 'fellowship', 'internship', or 'partnership'"}
	}
	if !status.Visibility.Valid(p.Status) {
		return models.Program{}, mongo.CommandError{Message: "status must be 'active' or 'inactive'"}
	}

	if err := s.c.Insert(ctx, p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Program) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Title) != "" {
		set["title"] = mut.Title
	}
	if strings.TrimSpace(mut.Description) != "" {
		set["description"] = mut.Description
	}
	if mut.Type != "" {
		if !validType(mut.Type) {
			return mongo.CommandError{Message: "type must be 'fellowship', 'internship', or 'partnership'"}
		}
		set["type"] = mut.Type
	}
	set["duration"] = mut.Duration
	set["commitment"] = mut.Commitment
	if mut.Benefits != nil {
		set["benefits"] = mut.Benefits
	}
	if mut.Status != "" {
		if !status.Visibility.Valid(mut.Status) {
			return mongo.CommandError{Message: "status must be 'active' or 'inactive'"}
		}
		set["status"] = mut.Status
	}
	set["updated_at"] = records.Now()

	return s.c.UpdateFields(ctx, id, set)
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Program, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.Program, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

func (s *Store) ListActive(ctx context.Context) ([]models.Program, error) {
	return s.c.ListNewest(ctx, bson.M{"status": status.Active})
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
