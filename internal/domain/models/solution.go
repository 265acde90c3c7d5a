// internal/domain/models/solution.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Solution is a submitted answer to a challenge. It stays "pending"
// until an admin approves or rejects it; only approved solutions appear
// on public listings.
type Solution struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Author      string `bson:"author" json:"author"`
	University  string `bson:"university" json:"university"`
	Category    string `bson:"category" json:"category"`

	Tags []string `bson:"tags,omitempty" json:"tags,omitempty"`

	// ChallengeID links the solution to the challenge it answers.
	// Nil for general submissions made outside a specific challenge.
	ChallengeID *primitive.ObjectID `bson:"challenge_id,omitempty" json:"challengeId,omitempty"`

	// PDFURL points at the uploaded attachment in object storage, if any.
	PDFURL string `bson:"pdf_url,omitempty" json:"pdfUrl,omitempty"`

	Status string `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
