// internal/app/store/challenges/challengestore.go
package challengestore

import (
	"context"
	"errors"
	"strings"
	"time"

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
	c *records.Collection[models.Challenge]
}

var ErrDuplicateTitle = errors.New("a challenge with this title already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Challenge](db, "challenges")}
}

// Create inserts a new Challenge, setting TitleCI, timestamps, and a
// zeroed participant count.
func (s *Store) Create(ctx context.Context, ch models.Challenge) (models.Challenge, error) {
	now := records.Now()

	ch.ID = primitive.NewObjectID()
	ch.TitleCI = text.Fold(ch.Title)
	if ch.Status == "" {
		ch.Status = status.Visibility.Initial()
	}
	ch.Participants = 0
	ch.CreatedAt = now
	ch.UpdatedAt = &now

	if strings.TrimSpace(ch.Title) == "" {
		return models.Challenge{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(ch.Description) == "" {
		return models.Challenge{}, mongo.CommandError{Message: "description is required"}
	}
	if !status.Visibility.Valid(ch.Status) {
		return models.Challenge{}, mongo.CommandError{Message: "status must be 'active' or 'inactive'"}
	}

	if err := s.c.Insert(ctx, ch); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Challenge{}, ErrDuplicateTitle
		}
		return models.Challenge{}, err
	}
	return ch, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Challenge) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Title) != "" {
		set["title"] = mut.Title
		set["title_ci"] = text.Fold(mut.Title)
	}
	if strings.TrimSpace(mut.Description) != "" {
		set["description"] = mut.Description
	}
	set["prize"] = mut.Prize
	if !mut.Deadline.IsZero() {
		set["deadline"] = mut.Deadline
	}
	if mut.Tags != nil {
		set["tags"] = mut.Tags
	}
	if mut.Status != "" {
		if !status.Visibility.Valid(mut.Status) {
			return mongo.CommandError{Message: "status must be 'active' or 'inactive'"}
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

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Challenge, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

// ListAll returns every challenge, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Challenge, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

// ListActive returns the challenges shown on the public platform page.
func (s *Store) ListActive(ctx context.Context) ([]models.Challenge, error) {
	return s.c.ListNewest(ctx, bson.M{"status": status.Active})
}

func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, v string) error {
	if !status.Visibility.Valid(v) {
		return mongo.CommandError{Message: "status must be 'active' or 'inactive'"}
	}
	return s.c.SetStatus(ctx, id, v)
}

// AddParticipant bumps the participant count after a solution comes in.
// Read-then-write on purpose: the count is display-only and an
// occasional lost increment under concurrency is acceptable.
func (s *Store) AddParticipant(ctx context.Context, id primitive.ObjectID) (int, error) {
	ch, err := s.c.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	next := ch.Participants + 1
	if err := s.c.UpdateFields(ctx, id, bson.M{"participants": next}); err != nil {
		return 0, err
	}
	return next, nil
}

// DeactivatePastDeadline flips active challenges whose deadline has
// passed to inactive. Used by the background sweep.
func (s *Store) DeactivatePastDeadline(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.c.Raw().UpdateMany(ctx,
		bson.M{
			"status":   status.Active,
			"deadline": bson.M{"$gt": time.Time{}, "$lt": now},
		},
		bson.M{"$set": bson.M{"status": status.Inactive, "updated_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
