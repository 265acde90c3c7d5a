// internal/domain/models/problem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Problem is a community-submitted problem statement. Votes is a
// best-effort counter: upvotes read the current value and write back
// value+1, so concurrent upvotes can race (accepted behavior).
type Problem struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category" json:"category"`
	SubmittedBy string `bson:"submitted_by" json:"submittedBy"`

	Votes int `bson:"votes" json:"votes"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
