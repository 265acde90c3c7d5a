// internal/domain/models/capstone.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CapstoneProject is a student capstone submitted for review.
type CapstoneProject struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Author      string `bson:"author" json:"author"`
	University  string `bson:"university" json:"university"`

	Status string `bson:"status" json:"status"` // in_review | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
