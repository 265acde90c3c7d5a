// internal/app/store/contactmessages/contactmessagestore.go
package contactmessagestore

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
	c *records.Collection[models.ContactMessage]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.ContactMessage](db, "contact_messages")}
}

// Create inserts a contact message. New messages start unread.
func (s *Store) Create(ctx context.Context, cm models.ContactMessage) (models.ContactMessage, error) {
	cm.ID = primitive.NewObjectID()
	cm.Status = status.Inbox.Initial()
	cm.CreatedAt = records.Now()

	if strings.TrimSpace(cm.Email) == "" {
		return models.ContactMessage{}, mongo.CommandError{Message: "email is required"}
	}
	if strings.TrimSpace(cm.Message) == "" {
		return models.ContactMessage{}, mongo.CommandError{Message: "message is required"}
	}

	if err := s.c.Insert(ctx, cm); err != nil {
		return models.ContactMessage{}, err
	}
	return cm, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ContactMessage, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

// MarkRead flips one message to read. Marking an already-read message
// is a no-op that still succeeds.
func (s *Store) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.c.SetStatus(ctx, id, status.Read)
}

// CountUnread returns how many messages are waiting, shown as the
// admin inbox badge.
func (s *Store) CountUnread(ctx context.Context) (int64, error) {
	return s.c.Count(ctx, bson.M{"status": status.Unread})
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
