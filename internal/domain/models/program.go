// internal/domain/models/program.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a structured offering (fellowship, internship, or
// partnership track) listed on the programs page.
type Program struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Type        string   `bson:"type" json:"type"` // fellowship | internship | partnership
	Duration    string   `bson:"duration,omitempty" json:"duration,omitempty"`
	Commitment  string   `bson:"commitment,omitempty" json:"commitment,omitempty"`
	Benefits    []string `bson:"benefits,omitempty" json:"benefits,omitempty"`

	Status string `bson:"status" json:"status"` // active | inactive

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
