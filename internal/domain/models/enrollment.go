// internal/domain/models/enrollment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment records that an account joined a course. Paid courses
// carry the payment intent that unlocked the enrollment; free courses
// leave it empty.
type Enrollment struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	CourseID  primitive.ObjectID `bson:"course_id" json:"courseId"`
	AccountID primitive.ObjectID `bson:"account_id" json:"accountId"`

	PaymentIntentID string `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
