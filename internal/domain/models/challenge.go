// internal/domain/models/challenge.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge is an innovation challenge that solutions are submitted
// against. Participants counts submitted solutions and is maintained
// best-effort (read-then-increment, no atomic guarantee).
type Challenge struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped

	Description string `bson:"description" json:"description"`
	Prize       string `bson:"prize,omitempty" json:"prize,omitempty"`

	Deadline time.Time `bson:"deadline" json:"deadline"`
	Tags     []string  `bson:"tags,omitempty" json:"tags,omitempty"`

	Status string `bson:"status" json:"status"` // "active" or "inactive"

	Participants int `bson:"participants" json:"participants"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// Expired reports whether the challenge deadline has passed.
func (c Challenge) Expired(now time.Time) bool {
	return !c.Deadline.IsZero() && c.Deadline.Before(now)
}
