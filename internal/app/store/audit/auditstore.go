// internal/app/store/audit/auditstore.go
package auditstore

import (
	"context"

	"github.com/syneroa/platform/internal/app/store/records"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *records.Collection[models.AuditEvent]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.AuditEvent](db, "audit_events")}
}

func (s *Store) Create(ctx context.Context, ev models.AuditEvent) error {
	ev.ID = primitive.NewObjectID()
	ev.CreatedAt = records.Now()
	return s.c.Insert(ctx, ev)
}

// ListRecent returns the newest events, capped at limit.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.AuditEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	return s.c.Find(ctx, bson.M{}, opts)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
