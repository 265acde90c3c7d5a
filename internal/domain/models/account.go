// internal/domain/models/account.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a signed-up user. EmailCI is the case-folded email used
// for the unique index and lookups; Email keeps the casing the user
// typed.
type Account struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	EmailCI string `bson:"email_ci" json:"-"`

	PasswordHash string `bson:"password_hash" json:"-"`

	Role   string `bson:"role" json:"role"`     // user | admin
	Status string `bson:"status" json:"status"` // active | disabled

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
