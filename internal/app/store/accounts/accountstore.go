// internal/app/store/accounts/accountstore.go
package accountstore

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
	c *records.Collection[models.Account]
}

var ErrDuplicateEmail = errors.New("an account with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Account](db, "accounts")}
}

// Create inserts a new account. The caller supplies PasswordHash; the
// store never sees plaintext.
func (s *Store) Create(ctx context.Context, a models.Account) (models.Account, error) {
	now := records.Now()

	a.ID = primitive.NewObjectID()
	a.EmailCI = text.Fold(a.Email)
	if a.Role == "" {
		a.Role = "user"
	}
	if a.Status == "" {
		a.Status = status.AccountStates.Initial()
	}
	a.CreatedAt = now
	a.UpdatedAt = &now

	if strings.TrimSpace(a.Email) == "" {
		return models.Account{}, mongo.CommandError{Message: "email is required"}
	}
	if strings.TrimSpace(a.Name) == "" {
		return models.Account{}, mongo.CommandError{Message: "name is required"}
	}
	if a.PasswordHash == "" {
		return models.Account{}, mongo.CommandError{Message: "password hash is required"}
	}

	if err := s.c.Insert(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Account{}, ErrDuplicateEmail
		}
		return models.Account{}, err
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Account, error) {
	return s.c.GetByID(ctx, id)
}

// GetByEmail looks up an account by case-folded email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	var a models.Account
	err := s.c.Raw().FindOne(ctx, bson.M{"email_ci": text.Fold(email)}).Decode(&a)
	if err != nil {
		return models.Account{}, err
	}
	return a, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

func (s *Store) ListAll(ctx context.Context) ([]models.Account, error) {
	return s.c.ListNewest(ctx, bson.M{})
}

// SetRole overwrites the account role.
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	if role != "user" && role != "admin" {
		return mongo.CommandError{Message: "role must be 'user' or 'admin'"}
	}
	return s.c.UpdateFields(ctx, id, bson.M{"role": role, "updated_at": records.Now()})
}

func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, v string) error {
	if !status.AccountStates.Valid(v) {
		return mongo.CommandError{Message: "status must be 'active' or 'disabled'"}
	}
	return s.c.SetStatus(ctx, id, v)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
