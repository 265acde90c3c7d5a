// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a paid or free course in the catalog. Students counts how
// many enrollments have completed; it is bumped with a read-then-write
// update, so concurrent enrollments can undercount. That is accepted:
// the number is display-only.
type Course struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"-"`

	Description string  `bson:"description" json:"description"`
	Instructor  string  `bson:"instructor" json:"instructor"`
	Price       float64 `bson:"price" json:"price"`
	Duration    string  `bson:"duration,omitempty" json:"duration,omitempty"`
	Level       string  `bson:"level,omitempty" json:"level,omitempty"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`

	Students int `bson:"students" json:"students"`

	Status string `bson:"status" json:"status"` // draft | published

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// Free reports whether enrolling requires no payment.
func (c Course) Free() bool { return c.Price <= 0 }
