// internal/app/store/partnerapps/partnerappstore.go
package partnerappstore

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
	c *records.Collection[models.PartnerApplication]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.PartnerApplication](db, "partner_applications")}
}

// Create inserts a partner application. New applications start pending.
func (s *Store) Create(ctx context.Context, pa models.PartnerApplication) (models.PartnerApplication, error) {
	pa.ID = primitive.NewObjectID()
	pa.Status = status.Review.Initial()
	pa.CreatedAt = records.Now()

	if strings.TrimSpace(pa.Name) == "" {
		return models.PartnerApplication{}, mongo.CommandError{Message: "name is required"}
	}
	if strings.TrimSpace(pa.Email) == "" {
		return models.PartnerApplication{}, mongo.CommandError{Message: "email is required"}
	}
	if strings.TrimSpace(pa.Organization) == "" {
		return models.PartnerApplication{}, mongo.CommandError{Message: "organization is required"}
	}

	if err := s.c.Insert(ctx, pa); err != nil {
		return models.PartnerApplication{}, err
	}
	return pa, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.PartnerApplication, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.PartnerApplication, error) {
	return s.c.ListNewest(ctx, bson.M{})
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
