// internal/domain/models/partnerapp.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerApplication is an organization's request to partner with the
// platform, submitted through the partners page.
type PartnerApplication struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Organization string `bson:"organization" json:"organization"`
	Type         string `bson:"type,omitempty" json:"type,omitempty"`
	Message      string `bson:"message" json:"message"`

	Status string `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
