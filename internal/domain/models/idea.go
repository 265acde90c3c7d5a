// internal/domain/models/idea.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Idea is a lightweight project idea pitched through the public
// submission form.
type Idea struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Author      string   `bson:"author" json:"author"`
	Email       string   `bson:"email" json:"email"`
	University  string   `bson:"university" json:"university"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`

	Status string `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
