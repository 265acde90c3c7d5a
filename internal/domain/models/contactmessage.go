// internal/domain/models/contactmessage.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a message sent through the contact form. New
// messages start unread; admins flip them to read one at a time.
type ContactMessage struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Subject   string `bson:"subject" json:"subject"`
	Message   string `bson:"message" json:"message"`

	Status string `bson:"status" json:"status"` // unread | read

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
